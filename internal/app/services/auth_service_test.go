package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	pkgauth "github.com/mertcan/coursehub/internal/pkg/auth"
)

type fakeUserStore struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	cp := *user
	cp.ID = f.nextID
	f.users[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, _ int64) error {
	return nil
}

type fakeTokenStore struct {
	// user ID -> refresh token, mirroring the one-token-per-user table
	tokens map[int64]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[int64]string)}
}

func (f *fakeTokenStore) Store(_ context.Context, userID int64, token string, _ time.Time) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeTokenStore) Lookup(_ context.Context, token string) (int64, error) {
	for userID, t := range f.tokens {
		if t == token {
			return userID, nil
		}
	}
	return 0, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) Revoke(_ context.Context, userID int64) error {
	delete(f.tokens, userID)
	return nil
}

func newAuthFixture() (AuthService, *fakeTokenStore) {
	tokens := newFakeTokenStore()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(newFakeUserStore(), tokens, jwtService), tokens
}

func registerAndLogin(t *testing.T, svc AuthService) *dto.LoginResponse {
	t.Helper()
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "teacher@coursehub.io",
		Password:  "Sup3rSecret!",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      string(models.RoleTeacher),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@coursehub.io",
		Password: "Sup3rSecret!",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return resp
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newAuthFixture()

	resp := registerAndLogin(t, svc)
	if resp.Token.AccessToken == "" || resp.Token.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", resp.Token)
	}
	if resp.User.Email != "teacher@coursehub.io" {
		t.Errorf("unexpected user in login response: %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	registerAndLogin(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@coursehub.io",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, tokens := newAuthFixture()
	login := registerAndLogin(t, svc)

	// The refresh token works until logout; each refresh rotates it
	rotated, err := svc.RefreshToken(context.Background(), login.Token.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken before logout failed: %v", err)
	}

	if err := svc.Logout(context.Background(), login.User.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok := tokens.tokens[login.User.ID]; ok {
		t.Error("refresh token still stored after logout")
	}

	_, err = svc.RefreshToken(context.Background(), rotated.RefreshToken)
	if !errors.Is(err, apperrors.ErrTokenNotFound) {
		t.Fatalf("expected token-not-found after logout, got %v", err)
	}
}
