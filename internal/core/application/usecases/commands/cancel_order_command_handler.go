package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// CancelOrderCommandHandler moves an order to Cancelled on behalf of its
// owner or an admin.
// Cancelling a cancelled order succeeds without change; cancelling a finalized order is a conflict.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler returns a handler that moves an order to
// cancelled when policy lets the actor do so.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle returns the order in its new state.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.AccessDeniedError when the actor neither owns the order nor is an admin
//   - *errs.ConflictError when the order is already in the other terminal state
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := loadAuthorizedOrder(ctx, repo, h.policy, cmd.OrderID(), cmd.Actor(), "cancel")
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
