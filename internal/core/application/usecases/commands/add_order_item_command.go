package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a line item to an existing order.
//
// Example:
//
//	cmd, err := NewAddOrderItemCommand(orderID, kernel.NewUUID(), 2, kernel.MustMoney("5.0"), "pepperoni", "large", actor)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// result.Order.TotalPrice() reflects the new line
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money
	flavor    string
	size      string
	actor     *user.User

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	flavor string,
	size string,
	actor *user.User,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		flavor: flavor,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
		cmd.setActor(actor),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c AddOrderItemCommand) Flavor() string {
	return c.flavor
}

func (c AddOrderItemCommand) Size() string {
	return c.size
}

func (c AddOrderItemCommand) Actor() *user.User {
	return c.actor
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *AddOrderItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	c.unitPrice = unitPrice
	return nil
}

func (c *AddOrderItemCommand) setActor(actor *user.User) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
