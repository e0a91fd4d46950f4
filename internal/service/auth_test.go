package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gymkit/api/internal/model"
)

func newTestAuthService(users *mockUserRepo, tokens TokenRepository) *AuthService {
	if users == nil {
		users = &mockUserRepo{}
	}
	if tokens == nil {
		tokens = newInMemoryTokenRepo()
	}
	return NewAuthService(AuthServiceConfig{
		UserRepo:     users,
		TokenService: newTestTokenService(tokens),
	})
}

func activeUser() *model.User {
	return &model.User{
		ID:       "user:1",
		Username: "john.smith",
		Password: "secretpass",
		IsActive: true,
	}
}

func TestLogin_ValidCredentials_ReturnsTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return activeUser(), nil
		},
	}
	svc := newTestAuthService(users, nil)

	result, err := svc.Login(ctx, model.LoginRequest{Username: "john.smith", Password: "secretpass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TokenPair == nil || result.TokenPair.AccessToken == "" {
		t.Error("expected a token pair on successful login")
	}
}

func TestLogin_WrongPassword_Fails(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return activeUser(), nil
		},
	}
	svc := newTestAuthService(users, nil)

	// Exact plaintext comparison, so case matters
	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "john.smith", Password: "SecretPass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUsername_Fails(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(nil, nil)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "ghost", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveAccount_Fails(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			user := activeUser()
			user.IsActive = false
			return user, nil
		},
	}
	svc := newTestAuthService(users, nil)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "john.smith", Password: "secretpass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return activeUser(), nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return activeUser(), nil
		},
	}
	svc := newTestAuthService(users, nil)

	login, err := svc.Login(ctx, model.LoginRequest{Username: "john.smith", Password: "secretpass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, login.TokenPair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.RefreshToken == login.TokenPair.RefreshToken {
		t.Error("expected a rotated refresh token")
	}

	// The original token is single-use
	if _, err := svc.Refresh(ctx, login.TokenPair.RefreshToken); !errors.Is(err, ErrRefreshTokenRevoked) {
		t.Errorf("expected ErrRefreshTokenRevoked on reuse, got %v", err)
	}
}
