package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/auth"
)

func newAuthService(users *fakeUserStore) *services.AuthService {
	return services.NewAuthService(users, auth.NewManager("test-secret"), services.AdminCredentials{
		Email:    "admin@example.com",
		Password: "admin-pass",
	})
}

func TestRegisterIssuesToken(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	token, err := svc.Register(context.Background(), "Asha", "asha@example.com", "long enough password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, stored.Role)
	assert.NotEqual(t, "long enough password", stored.Password, "password must be stored hashed")
	assert.NotNil(t, stored.CartData)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "short")
	assert.ErrorIs(t, err, services.ErrWeakPassword)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "Asha", "not-an-email", "long enough password")
	assert.ErrorIs(t, err, services.ErrInvalidEmail)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "long enough password")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Asha Again", "asha@example.com", "another password")
	assert.ErrorIs(t, err, services.ErrDuplicateUser)
}

func TestRegisterWithAdminEmailGetsAdminRole(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Admin", "admin@example.com", "long enough password")
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, stored.Role)
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "long enough password")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "asha@example.com", "long enough password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever password")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestAdminLogin(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	token, err := svc.AdminLogin(context.Background(), "admin@example.com", "admin-pass")
	require.NoError(t, err)

	claims, err := auth.NewManager("test-secret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.UserID)

	_, err = svc.AdminLogin(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminLoginUnconfigured(t *testing.T) {
	svc := services.NewAuthService(newFakeUserStore(), auth.NewManager("test-secret"), services.AdminCredentials{})

	_, err := svc.AdminLogin(context.Background(), "admin@example.com", "admin-pass")
	assert.ErrorIs(t, err, services.ErrAdminNotConfigured)
}
