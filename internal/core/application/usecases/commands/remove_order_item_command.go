package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand deletes a line item, addressed by its own id.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	actor  *user.User

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(itemID kernel.UUID, actor *user.User) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c RemoveOrderItemCommand) Actor() *user.User {
	return c.actor
}

func (c *RemoveOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}

func (c *RemoveOrderItemCommand) setActor(actor *user.User) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
