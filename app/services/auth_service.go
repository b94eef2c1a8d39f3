package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/meera/app/models"
	"github.com/shashiranjanraj/meera/pkg/auth"
	"github.com/shashiranjanraj/meera/pkg/validate"
)

// AdminCredentials is the configured admin email/password pair, injected at
// startup. Registration with the admin email yields the admin role; the
// separate admin login path compares against the plaintext password.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthService implements registration and the two login paths.
type AuthService struct {
	users  UserStore
	tokens *auth.Manager
	admin  AdminCredentials
}

func NewAuthService(users UserStore, tokens *auth.Manager, admin AdminCredentials) *AuthService {
	return &AuthService{users: users, tokens: tokens, admin: admin}
}

// Register creates a user and returns a fresh token.
// The plaintext password is never stored, only its bcrypt hash.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrDuplicateUser
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	if !validate.IsEmail(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", ErrWeakPassword
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	role := auth.RoleUser
	if email == s.admin.Email {
		role = auth.RoleAdmin
	}

	id, err := s.users.Create(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		CartData: map[string]map[string]int{},
	})
	if err != nil {
		return "", err
	}

	return s.tokens.GenerateToken(id, role)
}

// Login authenticates by email and bcrypt-compared password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.ID.Hex(), user.Role)
}

// AdminLogin compares the submitted pair directly against the configured
// admin credentials (not hashed) and issues an admin token with the email as
// subject. This parallel path is deliberately kept distinct from per-user
// login.
func (s *AuthService) AdminLogin(_ context.Context, email, password string) (string, error) {
	if s.admin.Email == "" || s.admin.Password == "" {
		return "", ErrAdminNotConfigured
	}
	if email != s.admin.Email || password != s.admin.Password {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken(email, auth.RoleAdmin)
}

// Users returns every registered user for the admin listing.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}
