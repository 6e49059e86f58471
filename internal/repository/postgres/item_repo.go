package postgres

import (
	"context"
	"errors"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ItemRepo implements ItemRepository using PostgreSQL.
type ItemRepo struct{ db *DB }

// NewItemRepo constructs an item repository.
func NewItemRepo(db *DB) *ItemRepo { return &ItemRepo{db: db} }

// Insert adds an item. The (wishlist_id, url) unique constraint enforces the
// per-wishlist duplicate URL guard; the same URL may exist in other wishlists.
func (r *ItemRepo) Insert(ctx context.Context, it *model.Item) error {
	const q = `
INSERT INTO items (id, wishlist_id, title, image, url)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, it.ID, it.WishlistID, it.Title, it.Image, it.URL)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects an item by id.
func (r *ItemRepo) Get(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	const q = `
SELECT id, wishlist_id, title, image, url, created_at
FROM items WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var it model.Item
	if err := row.Scan(&it.ID, &it.WishlistID, &it.Title, &it.Image, &it.URL, &it.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

// ListByWishlist returns all items of a wishlist, oldest first.
func (r *ItemRepo) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]model.Item, error) {
	const q = `
SELECT id, wishlist_id, title, image, url, created_at
FROM items WHERE wishlist_id=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, wishlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.WishlistID, &it.Title, &it.Image, &it.URL, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Delete removes an item and reports whether a row was deleted.
func (r *ItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM items WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
