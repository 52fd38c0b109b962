package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// DefaultOutboxBatchSize bounds one relay pass when no size is configured.
const DefaultOutboxBatchSize = 100

var ErrPublishOrderEventsCommandIsNotConstructed = errors.New(
	"PublishOrderEventsCommand must be created via NewPublishOrderEventsCommand constructor",
)

// PublishOrderEventsCommand asks for one relay pass over the outbox.
type PublishOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewPublishOrderEventsCommand creates the command. A batchSize of 0 selects
// DefaultOutboxBatchSize.
func NewPublishOrderEventsCommand(batchSize int) (PublishOrderEventsCommand, error) {
	if batchSize < 0 {
		return PublishOrderEventsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is negative", batchSize))
	}
	if batchSize == 0 {
		batchSize = DefaultOutboxBatchSize
	}

	return PublishOrderEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOrderEventsCommandIsNotConstructed)
}

func (c PublishOrderEventsCommand) BatchSize() int {
	return c.batchSize
}
