package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// FinalizeOrderCommandHandler moves an order to Finalized on behalf of its
// owner or an admin.
// Finalizing a finalized order succeeds without change; finalizing a cancelled order is a conflict.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewFinalizeOrderCommandHandler returns a handler for finalizing orders.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
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
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (*order.Order, error) {
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
	aggregate, err := loadAuthorizedOrder(ctx, repo, h.policy, cmd.OrderID(), cmd.Actor(), "finalize")
	if err != nil {
		return nil, err
	}

	if err = aggregate.Finalize(); err != nil {
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
