package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// RemoveOrderItemCommandHandler deletes a line item and persists the
// recomputed total of its order in one transaction.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveOrderItemCommandHandler returns a handler that drops a line item.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle resolves the item to its order before any access decision, so an
// unknown item is NotFound for every caller. Returns the updated order.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (*order.Order, error) {
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
	aggregate, err := repo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), "remove items from", aggregate.OwnerID()); err != nil {
		return nil, err
	}

	if err = aggregate.RemoveItem(cmd.ItemID()); err != nil {
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
