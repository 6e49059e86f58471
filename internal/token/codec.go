// Package token signs and verifies the compact bearer tokens used as access
// and refresh credentials.
package token

import (
	"errors"
	"time"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the validated content of a parsed token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Codec issues and parses HS256-signed JWTs carrying subject, issued-at and
// expiry. Expiry comparison is strict: no clock skew is tolerated (known
// limitation).
type Codec struct {
	signKey []byte
	now     func() time.Time
}

// New constructs a Codec with the process-wide signing key.
func New(signKey []byte) *Codec {
	return &Codec{signKey: signKey, now: time.Now}
}

// NewWithClock constructs a Codec with an injectable clock for tests.
func NewWithClock(signKey []byte, now func() time.Time) *Codec {
	return &Codec{signKey: signKey, now: now}
}

// Issue creates a signed token for subject valid for ttl from now.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.signKey)
}

// Parse verifies signature and expiry and returns the claims. Library errors
// are reclassified into the errs taxonomy: errs.ErrTokenExpired for a
// correctly signed token past expiry, errs.ErrTokenMalformed for everything
// else (bad signature, wrong signing method, missing subject or expiry).
func (c *Codec) Parse(raw string) (Claims, error) {
	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &rc,
		func(*jwt.Token) (any, error) { return c.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, errs.ErrTokenExpired
		}
		return Claims{}, errs.ErrTokenMalformed
	}
	if rc.Subject == "" {
		return Claims{}, errs.ErrTokenMalformed
	}
	return Claims{Subject: rc.Subject, ExpiresAt: rc.ExpiresAt.Time}, nil
}
