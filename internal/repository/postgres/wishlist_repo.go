package postgres

import (
	"context"
	"errors"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// WishlistRepo implements WishlistRepository using PostgreSQL.
type WishlistRepo struct{ db *DB }

// NewWishlistRepo constructs a wishlist repository.
func NewWishlistRepo(db *DB) *WishlistRepo { return &WishlistRepo{db: db} }

// Create inserts a new wishlist row. Owner is stored as NULL for legacy
// secret-protected lists and SecretHash as NULL for owned lists.
func (r *WishlistRepo) Create(ctx context.Context, w *model.Wishlist) error {
	const q = `
INSERT INTO wishlists (id, name, owner, secret_hash)
VALUES ($1, $2, NULLIF($3, ''), $4)`
	_, err := r.db.Pool.Exec(ctx, q, w.ID, w.Name, w.Owner, w.SecretHash)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a wishlist by id.
func (r *WishlistRepo) Get(ctx context.Context, id uuid.UUID) (*model.Wishlist, error) {
	const q = `
SELECT id, name, COALESCE(owner, ''), secret_hash, created_at
FROM wishlists WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var w model.Wishlist
	if err := row.Scan(&w.ID, &w.Name, &w.Owner, &w.SecretHash, &w.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// ListByOwner returns the owner's wishlists, oldest first.
func (r *WishlistRepo) ListByOwner(ctx context.Context, owner string) ([]model.Wishlist, error) {
	const q = `
SELECT id, name, COALESCE(owner, ''), secret_hash, created_at
FROM wishlists WHERE owner=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Wishlist
	for rows.Next() {
		var w model.Wishlist
		if err := rows.Scan(&w.ID, &w.Name, &w.Owner, &w.SecretHash, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
