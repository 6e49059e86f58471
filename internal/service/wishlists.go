package service

import (
	"context"
	"fmt"

	pkgcrypto "github.com/and161185/wishlink/internal/crypto"
	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/and161185/wishlink/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// Actor identifies the caller of a wishlist operation. Username comes from a
// validated access token; ListSecret is only consulted for legacy lists that
// are protected by a per-list secret instead of an owner.
type Actor struct {
	Username   string
	ListSecret string
}

// NewItem is the input for adding an item to a wishlist.
type NewItem struct {
	WishlistID uuid.UUID
	Title      string
	Image      string
	URL        string
}

// WishlistService defines ownership-gated wishlist and item operations.
// Every gate failure is reported as errs.ErrNotFound so responses do not
// reveal whether a wishlist exists.
type WishlistService interface {
	// Create makes a new wishlist owned by the actor.
	Create(ctx context.Context, actor Actor, name string) (*model.Wishlist, error)
	// List returns the actor's wishlists.
	List(ctx context.Context, actor Actor) ([]model.Wishlist, error)
	// AddItem appends an item to an owned wishlist, rejecting a URL already
	// present in the same wishlist.
	AddItem(ctx context.Context, actor Actor, in NewItem) (*model.Item, error)
	// Items returns the items of an owned wishlist.
	Items(ctx context.Context, actor Actor, wishlistID uuid.UUID) ([]model.Item, error)
	// RemoveItem deletes an item from an owned wishlist.
	RemoveItem(ctx context.Context, actor Actor, itemID uuid.UUID) error
	// PublicView returns a wishlist and its items without any ownership
	// check; this backs the shared read-only page.
	PublicView(ctx context.Context, wishlistID uuid.UUID) (*model.Wishlist, []model.Item, error)
}

type WishlistServiceImpl struct {
	wishlists repository.WishlistRepository
	items     repository.ItemRepository
}

// NewWishlistService constructs WishlistService.
func NewWishlistService(wishlists repository.WishlistRepository, items repository.ItemRepository) *WishlistServiceImpl {
	return &WishlistServiceImpl{wishlists: wishlists, items: items}
}

// authorizeOwner decides whether actor may mutate w. Owned lists require
// owner equality; legacy lists require the actor's secret to verify against
// the stored hash. An empty legacy secret was stored as bcrypt("") at
// creation, so the verify path is uniform.
func authorizeOwner(w *model.Wishlist, actor Actor) bool {
	if w.Owner != "" {
		return w.Owner == actor.Username
	}
	return pkgcrypto.VerifyPassword(actor.ListSecret, w.SecretHash)
}

// Create makes a new wishlist owned by the actor.
func (s *WishlistServiceImpl) Create(ctx context.Context, actor Actor, name string) (*model.Wishlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: wishlist name is required", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	w := &model.Wishlist{ID: id, Name: name, Owner: actor.Username}
	if err := s.wishlists.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// List returns the actor's wishlists.
func (s *WishlistServiceImpl) List(ctx context.Context, actor Actor) ([]model.Wishlist, error) {
	return s.wishlists.ListByOwner(ctx, actor.Username)
}

// AddItem appends an item after the ownership gate and duplicate URL guard.
func (s *WishlistServiceImpl) AddItem(ctx context.Context, actor Actor, in NewItem) (*model.Item, error) {
	if in.Title == "" || in.URL == "" {
		return nil, fmt.Errorf("%w: item title and url are required", errs.ErrValidation)
	}
	if err := s.gate(ctx, actor, in.WishlistID); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	it := &model.Item{ID: id, WishlistID: in.WishlistID, Title: in.Title, Image: in.Image, URL: in.URL}
	if err := s.items.Insert(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Items returns the items of an owned wishlist.
func (s *WishlistServiceImpl) Items(ctx context.Context, actor Actor, wishlistID uuid.UUID) ([]model.Item, error) {
	if err := s.gate(ctx, actor, wishlistID); err != nil {
		return nil, err
	}
	return s.items.ListByWishlist(ctx, wishlistID)
}

// RemoveItem deletes an item after gating on its wishlist's owner.
func (s *WishlistServiceImpl) RemoveItem(ctx context.Context, actor Actor, itemID uuid.UUID) error {
	it, err := s.items.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.gate(ctx, actor, it.WishlistID); err != nil {
		return err
	}
	deleted, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.ErrNotFound
	}
	return nil
}

// PublicView returns a wishlist and its items for the shared page.
func (s *WishlistServiceImpl) PublicView(ctx context.Context, wishlistID uuid.UUID) (*model.Wishlist, []model.Item, error) {
	w, err := s.wishlists.Get(ctx, wishlistID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.items.ListByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, nil, err
	}
	return w, items, nil
}

// gate loads the wishlist and applies the ownership check. Both "missing" and
// "not yours" collapse into errs.ErrNotFound.
func (s *WishlistServiceImpl) gate(ctx context.Context, actor Actor, wishlistID uuid.UUID) error {
	w, err := s.wishlists.Get(ctx, wishlistID)
	if err != nil {
		return err
	}
	if !authorizeOwner(w, actor) {
		return errs.ErrNotFound
	}
	return nil
}
