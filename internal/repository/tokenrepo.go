package repository

import (
	"context"

	"github.com/and161185/wishlink/internal/model"
)

// RefreshTokenRepository persists the currently-valid refresh token of each
// session, keyed by the token value itself.
type RefreshTokenRepository interface {
	// Insert stores a freshly issued refresh token row.
	Insert(ctx context.Context, s *model.RefreshSession) error
	// Find loads the row for token, errs.ErrNotFound if absent.
	Find(ctx context.Context, token string) (*model.RefreshSession, error)
	// Delete removes the row for token and reports whether a row was actually
	// deleted. The report is the synchronization primitive for rotation: of
	// two concurrent rotations of the same token only one observes true.
	Delete(ctx context.Context, token string) (bool, error)
}
