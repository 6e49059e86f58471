// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist (or the caller
	// is not allowed to see it; the two are deliberately indistinguishable).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (username taken, duplicate item URL within a wishlist).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication (wrong password).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation indicates malformed or incomplete input.
	ErrValidation = errors.New("validation failed")
)

// Token sentinels. The token codec reclassifies jwt library errors into these;
// jwt error types never cross package boundaries.
var (
	// ErrTokenExpired indicates a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates a token with a bad signature, wrong signing
	// method or missing required claims.
	ErrTokenMalformed = errors.New("token malformed")
)

// Auth gate sentinels for bearer extraction from request headers.
var (
	// ErrNoAuthHeader indicates a missing Authorization header.
	ErrNoAuthHeader = errors.New("missing authorization header")

	// ErrBadScheme indicates an Authorization header that is not Bearer-prefixed.
	ErrBadScheme = errors.New("invalid authorization scheme")
)

// Refresh rotation sentinels.
var (
	// ErrInvalidRefreshToken indicates a refresh token that is unknown to the
	// store, malformed, or already superseded by rotation.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrRefreshTokenExpired indicates a known but expired refresh token.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
