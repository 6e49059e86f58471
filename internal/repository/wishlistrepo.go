package repository

import (
	"context"

	"github.com/and161185/wishlink/internal/model"
	"github.com/gofrs/uuid/v5"
)

// WishlistRepository provides keyed access to wishlists.
type WishlistRepository interface {
	// Create inserts a new wishlist.
	Create(ctx context.Context, w *model.Wishlist) error
	// Get loads a wishlist by id, errs.ErrNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*model.Wishlist, error)
	// ListByOwner returns all wishlists owned by owner.
	ListByOwner(ctx context.Context, owner string) ([]model.Wishlist, error)
}

// ItemRepository provides keyed access to wishlist items.
type ItemRepository interface {
	// Insert adds an item; a duplicate URL within the same wishlist fails
	// with errs.ErrAlreadyExists.
	Insert(ctx context.Context, it *model.Item) error
	// Get loads an item by id, errs.ErrNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// ListByWishlist returns all items of a wishlist.
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]model.Item, error)
	// Delete removes an item and reports whether a row was deleted.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
