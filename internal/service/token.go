package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/pkg/jwt"
)

// tokenSecretCost is the bcrypt cost for refresh token secrets. Verified on
// every refresh, so kept below the cost used for long-lived credentials.
const tokenSecretCost = 10

// RefreshToken represents a stored refresh token. Only the bcrypt hash of
// the secret half is persisted; the client holds "<id>.<secret>".
type RefreshToken struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SecretHash string    `json:"-"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	Revoked    bool      `json:"revoked"`
}

// TokenRepository defines the interface for refresh token storage
type TokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByID(ctx context.Context, id string) (*RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}

// TokenService handles JWT and refresh token operations
type TokenService struct {
	jwtService      *jwt.Service
	tokenRepo       TokenRepository
	refreshDuration time.Duration
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWTService      *jwt.Service
	TokenRepo       TokenRepository
	RefreshDuration time.Duration // Default: 30 days
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	if cfg.RefreshDuration == 0 {
		cfg.RefreshDuration = 30 * 24 * time.Hour
	}
	return &TokenService{
		jwtService:      cfg.JWTService,
		tokenRepo:       cfg.TokenRepo,
		refreshDuration: cfg.RefreshDuration,
	}
}

// TokenPair represents an access token and refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

// GenerateTokenPair creates a new access token and refresh token for a user
func (s *TokenService) GenerateTokenPair(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, err := s.jwtService.Sign(jwt.Claims{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return nil, err
	}

	secret, err := generateTokenSecret()
	if err != nil {
		return nil, err
	}
	secretHash, err := bcrypt.GenerateFromPassword([]byte(secret), tokenSecretCost)
	if err != nil {
		return nil, fmt.Errorf("hash token secret: %w", err)
	}

	// Expired tokens are purged opportunistically on issuance; a failed
	// purge never blocks the login.
	_ = s.tokenRepo.DeleteExpired(ctx)

	stored := &RefreshToken{
		UserID:     user.ID,
		SecretHash: string(secretHash),
		ExpiresAt:  time.Now().Add(s.refreshDuration),
	}
	if err := s.tokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: stored.ID + "." + secret,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.jwtService.Expiration().Seconds()),
	}, nil
}

// Consume validates a refresh token and revokes it (single-use rotation).
// Presenting an already revoked token revokes every token of that user.
func (s *TokenService) Consume(ctx context.Context, refreshToken string) (*RefreshToken, error) {
	id, secret, ok := strings.Cut(refreshToken, ".")
	if !ok || id == "" || secret == "" {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.tokenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidRefreshToken
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.SecretHash), []byte(secret)) != nil {
		return nil, ErrInvalidRefreshToken
	}

	if stored.Revoked {
		// Reuse of a rotated token means the family is compromised.
		_ = s.tokenRepo.RevokeAllForUser(ctx, stored.UserID)
		return nil, ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrRefreshTokenExpired
	}

	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}
	return stored, nil
}

// ValidateAccessToken validates an access token and returns the claims
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

// RevokeAllUserTokens revokes all refresh tokens for a user (logout from all
// devices)
func (s *TokenService) RevokeAllUserTokens(ctx context.Context, userID string) error {
	return s.tokenRepo.RevokeAllForUser(ctx, userID)
}

func generateTokenSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate token secret: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
