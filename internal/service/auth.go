// Package service contains application services for authentication and wishlists.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcrypto "github.com/and161185/wishlink/internal/crypto"
	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/limiter"
	"github.com/and161185/wishlink/internal/model"
	"github.com/and161185/wishlink/internal/repository"
	"github.com/and161185/wishlink/internal/token"
)

// MinPasswordLen is the minimum accepted password length at registration.
const MinPasswordLen = 8

// AuthService defines the authentication and session lifecycle.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password string) error
	// LoginWithIP applies rate-limiting, authenticates the user and issues
	// an access/refresh pair, persisting the refresh token.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, error)
	// Refresh rotates a refresh token: the old token is atomically retired
	// and a new pair is issued. A used or superseded token never validates again.
	Refresh(ctx context.Context, oldRefresh string) (model.Tokens, error)
}

type AuthServiceImpl struct {
	users      repository.UserRepository
	sessions   repository.RefreshTokenRepository
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	lim        limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.RefreshTokenRepository,
	codec *token.Codec,
	accessTTL, refreshTTL time.Duration,
	lim limiter.Limiter,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:      users,
		sessions:   sessions,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		lim:        lim,
	}
}

// Register creates a new user record with a bcrypt password hash.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, MinPasswordLen)
	}
	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &model.User{Username: username, PwdHash: hash})
}

// LoginWithIP authenticates with rate limiting by (username, ip). An unknown
// user reports errs.ErrNotFound and a wrong password errs.ErrUnauthorized;
// both count as failures toward the lockout threshold.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return model.Tokens{}, errs.ErrNotFound
			}
			return model.Tokens{}, err
		}
		return model.Tokens{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	return s.issuePair(ctx, username)
}

// Refresh validates oldRefresh against both the persisted set and the codec,
// then rotates it. The conditional delete is the synchronization point: if a
// concurrent rotation already consumed the row, this call fails and no second
// live session is created.
func (s *AuthServiceImpl) Refresh(ctx context.Context, oldRefresh string) (model.Tokens, error) {
	if _, err := s.sessions.Find(ctx, oldRefresh); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, errs.ErrInvalidRefreshToken
		}
		return model.Tokens{}, err
	}

	claims, err := s.codec.Parse(oldRefresh)
	if err != nil {
		if errors.Is(err, errs.ErrTokenExpired) {
			return model.Tokens{}, errs.ErrRefreshTokenExpired
		}
		return model.Tokens{}, errs.ErrInvalidRefreshToken
	}

	deleted, err := s.sessions.Delete(ctx, oldRefresh)
	if err != nil {
		return model.Tokens{}, err
	}
	if !deleted {
		// Lost the race to a concurrent rotation of the same token.
		return model.Tokens{}, errs.ErrInvalidRefreshToken
	}

	return s.issuePair(ctx, claims.Subject)
}

// issuePair mints an access/refresh pair and persists the refresh token.
func (s *AuthServiceImpl) issuePair(ctx context.Context, username string) (model.Tokens, error) {
	access, err := s.codec.Issue(username, s.accessTTL)
	if err != nil {
		return model.Tokens{}, err
	}
	refresh, err := s.codec.Issue(username, s.refreshTTL)
	if err != nil {
		return model.Tokens{}, err
	}
	if err := s.sessions.Insert(ctx, &model.RefreshSession{Token: refresh, Username: username}); err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.accessTTL),
	}, nil
}
