package postgres

import (
	"context"
	"errors"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/jackc/pgx/v5"
)

// RefreshRepo implements RefreshTokenRepository using PostgreSQL.
type RefreshRepo struct{ db *DB }

// NewRefreshRepo constructs a refresh token repository.
func NewRefreshRepo(db *DB) *RefreshRepo { return &RefreshRepo{db: db} }

// Insert stores a freshly issued refresh token row.
func (r *RefreshRepo) Insert(ctx context.Context, s *model.RefreshSession) error {
	const q = `
INSERT INTO refresh_tokens (token, username)
VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, q, s.Token, s.Username)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Find selects the row for a token value.
func (r *RefreshRepo) Find(ctx context.Context, token string) (*model.RefreshSession, error) {
	const q = `
SELECT token, username, created_at
FROM refresh_tokens WHERE token=$1`
	row := r.db.Pool.QueryRow(ctx, q, token)
	var s model.RefreshSession
	if err := row.Scan(&s.Token, &s.Username, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes the row for token. The affected-rows report makes rotation
// race-safe: of two concurrent deletions of the same token only one sees true.
func (r *RefreshRepo) Delete(ctx context.Context, token string) (bool, error) {
	const q = `DELETE FROM refresh_tokens WHERE token=$1`
	tag, err := r.db.Pool.Exec(ctx, q, token)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
