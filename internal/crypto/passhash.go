// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the password. The salt is generated
// per call and embedded in the returned value, so no separate salt storage
// is needed.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// VerifyPassword verifies password against a stored bcrypt hash. The
// comparison is constant-time. A corrupt or truncated hash from storage is
// reported as a mismatch, never a panic.
func VerifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
