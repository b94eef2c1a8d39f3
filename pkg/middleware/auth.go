package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/meera/pkg/auth"
	"github.com/shashiranjanraj/meera/pkg/response"
)

type claimsKey struct{}

// ClaimsFromCtx returns the token claims attached by RequireUser/RequireAdmin.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <t>" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// RequireUser rejects requests without a valid token and attaches the
// decoded claims to the request context.
func RequireUser(mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				response.Unauthorized(w, "Not Authorized. Login Again.")
				return
			}

			claims, err := mgr.ValidateToken(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					response.Unauthorized(w, "Token Expired")
					return
				}
				response.Unauthorized(w, "Invalid Token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is RequireUser plus a role check: valid non-admin tokens get
// a 403. Applied to mutating product routes, the admin user list, and order
// administration.
func RequireAdmin(mgr *auth.Manager) func(http.Handler) http.Handler {
	requireUser := RequireUser(mgr)
	return func(next http.Handler) http.Handler {
		return requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := ClaimsFromCtx(r.Context())
			if claims == nil || claims.Role != auth.RoleAdmin {
				response.Forbidden(w, "Not Authorized. Admins only.")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
