package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/repository"
)

func newUserAuthServiceForTest(t *testing.T) *UserAuthService {
	t.Helper()
	db := setupServiceTestDB(t)
	return NewUserAuthService(testConfig(), repository.NewUserRepository(db))
}

func registerTestUser(t *testing.T, svc *UserAuthService, username, email string) {
	t.Helper()
	_, err := svc.Register(RegisterInput{
		Username:        username,
		Email:           email,
		Password:        "passw0rd1",
		PasswordConfirm: "passw0rd1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
}

func TestRegisterValidations(t *testing.T) {
	svc := newUserAuthServiceForTest(t)

	if _, err := svc.Register(RegisterInput{
		Username:        "mismatch",
		Email:           "mismatch@test.local",
		Password:        "passw0rd1",
		PasswordConfirm: "different1",
	}); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	if _, err := svc.Register(RegisterInput{
		Username:        "weak",
		Email:           "weak@test.local",
		Password:        "short1",
		PasswordConfirm: "short1",
	}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	registerTestUser(t, svc, "taken", "taken@test.local")
	if _, err := svc.Register(RegisterInput{
		Username:        "taken",
		Email:           "fresh@test.local",
		Password:        "passw0rd1",
		PasswordConfirm: "passw0rd1",
	}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username:        "fresh",
		Email:           "taken@test.local",
		Password:        "passw0rd1",
		PasswordConfirm: "passw0rd1",
	}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc := newUserAuthServiceForTest(t)
	registerTestUser(t, svc, "login-user", "login-user@test.local")

	user, pair, err := svc.Login("login-user", "passw0rd1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.LastLoginAt == nil {
		t.Fatal("expected last_login_at set")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens issued")
	}

	claims, err := svc.ParseUserJWT(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access token failed: %v", err)
	}
	if claims.TokenType != constants.TokenTypeAccess {
		t.Fatalf("token type want access got %s", claims.TokenType)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims user want %d got %d", user.ID, claims.UserID)
	}

	if _, _, err := svc.Login("login-user", "wrong-pass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newUserAuthServiceForTest(t)
	registerTestUser(t, svc, "refresh-user", "refresh-user@test.local")

	_, pair, err := svc.Login("refresh-user", "passw0rd1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// access tokens must not be exchangeable
	if _, _, err := svc.Refresh(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}

	user, next, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if user == nil || next.AccessToken == "" {
		t.Fatal("expected fresh pair from refresh")
	}
	claims, err := svc.ParseUserJWT(next.RefreshToken)
	if err != nil {
		t.Fatalf("parse refreshed token failed: %v", err)
	}
	if claims.TokenType != constants.TokenTypeRefresh {
		t.Fatalf("token type want refresh got %s", claims.TokenType)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newUserAuthServiceForTest(t)
	registerTestUser(t, svc, "profile-user", "profile-user@test.local")

	user, _, err := svc.Login("profile-user", "passw0rd1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	phone := "555-0101"
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone want %s got %s", phone, updated.Phone)
	}
	if updated.Email != "profile-user@test.local" {
		t.Fatalf("email should be unchanged, got %s", updated.Email)
	}

	registerTestUser(t, svc, "profile-other", "profile-other@test.local")
	otherEmail := "profile-other@test.local"
	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Email: &otherEmail}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}
