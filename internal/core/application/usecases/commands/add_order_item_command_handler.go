package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// AddOrderItemResult is the new line together with the order it now belongs to.
type AddOrderItemResult struct {
	Item  *order.Item
	Order *order.Order
}

// AddOrderItemCommandHandler appends an item and persists the recomputed
// total with it in one transaction. The order's status is not checked.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewAddOrderItemCommandHandler returns a handler that appends a line item
// to an order the caller may modify. Each Handle call runs in its own unit
// of work, and the order total is recomputed before commit.
//
// Example:
//
//	h := commands.NewAddOrderItemCommandHandler(uowFactory, services.NewAccessPolicy())
//	cmd, _ := commands.NewAddOrderItemCommand(orderID, kernel.NewUUID(), 2, price, "vanilla", "large", actor)
//	result, err := h.Handle(ctx, cmd)
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle checks existence, then access, then adds the item.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (AddOrderItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddOrderItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddOrderItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := loadAuthorizedOrder(ctx, repo, h.policy, cmd.OrderID(), cmd.Actor(), "add items to")
	if err != nil {
		return AddOrderItemResult{}, err
	}

	item, err := aggregate.AddItem(cmd.ItemID(), cmd.Quantity(), cmd.UnitPrice(), cmd.Flavor(), cmd.Size())
	if err != nil {
		return AddOrderItemResult{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return AddOrderItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddOrderItemResult{}, err
	}

	return AddOrderItemResult{Item: item, Order: aggregate}, nil
}
