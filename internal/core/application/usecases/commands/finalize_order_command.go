package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand asks to move an order to Finalized.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *user.User

	guard guard.ConstructorGuard
}

func NewFinalizeOrderCommand(orderID kernel.UUID, actor *user.User) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c FinalizeOrderCommand) Actor() *user.User {
	return c.actor
}

func (c *FinalizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinalizeOrderCommand) setActor(actor *user.User) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
