package ports

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// TokenService issues and verifies signed, expiring bearer tokens.
type TokenService interface {
	// Issue returns a token for subject that expires after ttl.
	Issue(subject kernel.UUID, ttl time.Duration) (string, error)

	// Validate returns the subject of a well-formed, correctly signed,
	// unexpired token. Failures wrap errs.ErrInvalidToken.
	Validate(token string) (kernel.UUID, error)
}
