package services

import (
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
)

// AccessPolicy decides whether an authenticated user may act on resources
// owned by another user. It is stateless and safe for concurrent use.
//
// Rules:
//   - an admin may act on anything
//   - a non-admin may act only on resources they own
//   - a nil or unconstructed actor is never allowed
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(actor, "cancel", o.OwnerID()); err != nil {
//	    return err // *errs.AccessDeniedError, errors.Is(err, errs.ErrForbidden)
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates the policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize allows the action when actor is an admin or owns the resource.
//
// Parameters:
//   - actor: the authenticated user
//   - action: short verb used in the denial message, e.g. "cancel"
//   - ownerID: owner of the target resource
//
// Returns:
//   - nil when allowed
//   - *errs.AccessDeniedError (wraps errs.ErrForbidden) when denied
//   - an error wrapping errs.ErrUnauthenticated when actor is missing
func (AccessPolicy) Authorize(actor *user.User, action string, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	if actor.IsAdmin() || actor.ID().IsEqual(ownerID) {
		return nil
	}

	return errs.NewAccessDeniedError(actor.ID().String(), action, "resources of user "+ownerID.String())
}

// AuthorizeAdmin allows the action for admins only.
func (AccessPolicy) AuthorizeAdmin(actor *user.User, action string) error {
	if err := actor.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	if actor.IsAdmin() {
		return nil
	}

	return errs.NewAccessDeniedError(actor.ID().String(), action, "without admin rights")
}
