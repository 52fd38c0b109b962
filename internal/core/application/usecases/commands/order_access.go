package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// requireActor rejects commands built without an authenticated user.
func requireActor(actor *user.User) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", errors.Join(errs.ErrUnauthenticated, err))
	}
	return nil
}

// loadAuthorizedOrder fetches the order, then asks the policy whether actor
// may perform action on it. A missing order is reported before any policy
// decision, so NotFound does not depend on who asks.
func loadAuthorizedOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	policy services.AccessPolicy,
	orderID kernel.UUID,
	actor *user.User,
	action string,
) (*order.Order, error) {
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = policy.Authorize(actor, action, aggregate.OwnerID()); err != nil {
		return nil, err
	}

	return aggregate, nil
}
