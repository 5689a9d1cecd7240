package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo persists refresh-token state in the 'refresh_tokens' table.
// Only the SHA-256 hash of a token ever reaches the database; the raw value
// lives solely in the client's hands.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh records a freshly issued refresh token hash.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, hash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, hash, exp)
	return err
}

// ValidateRefresh resolves a token hash to its user.  Revoked or expired
// tokens come back as sql.ErrNoRows, indistinguishable from unknown ones.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, hash string) (uint64, error) {
	var (
		userID    uint64
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		hash).Scan(&userID, &expiresAt, &revokedAt)
	if err != nil {
		return 0, err
	}
	if revokedAt.Valid || time.Now().UTC().After(expiresAt) {
		return 0, sql.ErrNoRows
	}
	return userID, nil
}

// RevokeByHash revokes a single token.  Used on rotation and single-device
// logout.
func (r *TokenRepo) RevokeByHash(ctx context.Context, hash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		hash)
	return err
}

// RevokeAllForUser revokes every active token a user holds.  Used on
// full logout.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
