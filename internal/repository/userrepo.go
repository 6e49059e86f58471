// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/wishlink/internal/model"
)

// UserRepository provides keyed access to user accounts.
type UserRepository interface {
	// Create inserts a new user; a duplicate username fails with
	// errs.ErrAlreadyExists, never a silent overwrite.
	Create(ctx context.Context, u *model.User) error
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
