package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// TokenRepository persists refresh tokens.
type TokenRepository struct {
	DB *pgxpool.Pool
}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Store saves a refresh token for a user, replacing any previous one.
func (r *TokenRepository) Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET token = $2, expires_at = $3`,
		userID, token, expiresAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error storing refresh token")
	}
	return err
}

// Lookup resolves a refresh token to its owning user. Expired or unknown
// tokens fail with token errors.
func (r *TokenRepository) Lookup(ctx context.Context, token string) (int64, error) {
	var userID int64
	var expiresAt time.Time
	err := r.DB.QueryRow(ctx, "SELECT user_id, expires_at FROM refresh_tokens WHERE token = $1", token).
		Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error looking up refresh token")
		return 0, err
	}
	if time.Now().After(expiresAt) {
		return 0, apperrors.ErrTokenExpired
	}
	return userID, nil
}

// Revoke deletes a user's refresh token.
func (r *TokenRepository) Revoke(ctx context.Context, userID int64) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM refresh_tokens WHERE user_id = $1", userID)
	return err
}
