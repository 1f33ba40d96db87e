// Package auth verifies legacy credentials against the lifting-tracker user
// table.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// legacySalt is the fixed salt the original tracker appended before hashing.
// It must not change while stored hashes are still in use.
const legacySalt = "salt123"

var (
	// ErrUserNotFound is returned when no credential row exists for the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the supplied password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// Verifier checks username/password pairs against stored salted hashes.
type Verifier struct {
	creds domain.CredentialRepository
}

// NewVerifier constructs a Verifier.
func NewVerifier(creds domain.CredentialRepository) *Verifier {
	return &Verifier{creds: creds}
}

// Verify looks up the credential and compares the salted hash of password
// against the stored hash. Store failures are returned unwrapped so callers
// can distinguish them from the two sentinel outcomes.
func (v *Verifier) Verify(ctx context.Context, username, password string) (*domain.Credential, error) {
	cred, err := v.creds.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrUserNotFound
	}
	if HashPassword(password) != cred.PasswordHash {
		return nil, ErrInvalidPassword
	}
	return cred, nil
}

// HashPassword returns the hex SHA-256 digest of password plus the legacy
// salt, the scheme shared with the original tracker.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + legacySalt))
	return hex.EncodeToString(sum[:])
}
