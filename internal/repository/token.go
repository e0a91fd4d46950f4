package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/service"
)

// TokenRepository handles refresh token data access
type TokenRepository struct {
	db database.Database
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db database.Database) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create stores a new refresh token. Only the bcrypt hash of the token
// secret is persisted.
func (r *TokenRepository) Create(ctx context.Context, token *service.RefreshToken) error {
	query := `
		CREATE refresh_token CONTENT {
			user: type::record($user),
			secret_hash: $secret_hash,
			expires_at: <datetime>$expires_at,
			created_at: time::now(),
			revoked: false
		}
	`
	vars := map[string]interface{}{
		"user":        token.UserID,
		"secret_hash": token.SecretHash,
		"expires_at":  token.ExpiresAt.Format(time.RFC3339),
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := rows(results)
	if len(created) == 0 {
		return errUnexpectedFormat
	}
	token.ID = recordID(created[0]["id"])
	token.CreatedAt = getTime(created[0], "created_at")
	return nil
}

// GetByID retrieves a refresh token by record ID. Returns (nil, nil) when the
// token does not exist.
func (r *TokenRepository) GetByID(ctx context.Context, id string) (*service.RefreshToken, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := row(result)
	if err != nil {
		return nil, err
	}
	return &service.RefreshToken{
		ID:         recordID(data["id"]),
		UserID:     recordID(data["user"]),
		SecretHash: getString(data, "secret_hash"),
		ExpiresAt:  getTime(data, "expires_at"),
		CreatedAt:  getTime(data, "created_at"),
		Revoked:    getBool(data, "revoked"),
	}, nil
}

// Revoke marks a refresh token as revoked
func (r *TokenRepository) Revoke(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET revoked = true`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// RevokeAllForUser revokes every refresh token belonging to a user
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	query := `UPDATE refresh_token SET revoked = true WHERE user = type::record($user)`
	return r.db.Execute(ctx, query, map[string]interface{}{"user": userID})
}

// DeleteExpired removes refresh tokens past their expiry
func (r *TokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.Execute(ctx, `DELETE refresh_token WHERE expires_at < time::now()`, nil)
}
