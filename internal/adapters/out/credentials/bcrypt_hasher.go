// Package credentials hashes user secrets with bcrypt.
package credentials

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.CredentialHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, which must be within
// bcrypt.MinCost..bcrypt.MaxCost.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errs.NewValueIsOutOfRangeError("cost", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash salts and hashes secret. Secrets bcrypt cannot take are reported
// as errs.ErrValueIsInvalid.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.NewValueIsInvalidErrorWithCause("secret", err)
	}
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether secret matches hash. Malformed hashes never match.
func (h *BcryptHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
