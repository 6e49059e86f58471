// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects an issued access/refresh token pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // access token expiry (for diagnostics)
}

// User represents an account. The password is never stored in plaintext;
// PwdHash is a bcrypt hash with the salt embedded.
type User struct {
	Username  string // unique, PK
	PwdHash   []byte
	CreatedAt time.Time
}

// RefreshSession is a persisted refresh token row. Exactly one row exists per
// live session; rotation replaces the row keyed by the old token value.
type RefreshSession struct {
	Token     string // the signed refresh token itself, PK
	Username  string
	CreatedAt time.Time
}

// Wishlist is an ownable collection of items. Exactly one of Owner/SecretHash
// is set: Owner for authenticated lists, SecretHash (bcrypt of a per-list
// secret) for legacy anonymous lists. An empty legacy secret is stored as
// bcrypt("") rather than treated as "always allow".
type Wishlist struct {
	ID         uuid.UUID
	Name       string
	Owner      string // empty for legacy lists
	SecretHash []byte // nil for owned lists
	CreatedAt  time.Time
}

// Item belongs to exactly one wishlist. Within a wishlist no two items share
// the same URL.
type Item struct {
	ID         uuid.UUID
	WishlistID uuid.UUID
	Title      string
	Image      string // optional
	URL        string
	CreatedAt  time.Time
}
