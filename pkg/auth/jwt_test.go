package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shashiranjanraj/meera/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret")

	token, err := m.GenerateToken("user-123", auth.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected subject user-123, got %q", claims.UserID)
	}
	if claims.Role != auth.RoleUser {
		t.Errorf("expected role %q, got %q", auth.RoleUser, claims.Role)
	}
}

func TestAdminRoleSurvivesRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret")

	token, err := m.GenerateToken("admin@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != auth.RoleAdmin {
		t.Errorf("expected admin role, got %q", claims.Role)
	}
}

func TestExpiredToken(t *testing.T) {
	m := auth.NewManagerWithTTL("test-secret", -time.Minute)

	token, err := m.GenerateToken("user-123", auth.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = m.ValidateToken(token)
	if !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	token, err := auth.NewManager("secret-a").GenerateToken("user-123", auth.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = auth.NewManager("secret-b").ValidateToken(token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMalformedToken(t *testing.T) {
	_, err := auth.NewManager("test-secret").ValidateToken("not.a.token")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plain password")
	}

	if !auth.CheckPassword(hash, "correct horse battery staple") {
		t.Error("expected matching password to verify")
	}
	if auth.CheckPassword(hash, "wrong password") {
		t.Error("expected wrong password to fail")
	}
}
