package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
)

// OutboxMessage is an order event stored in the same transaction as the
// order change it describes, waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
// Writing happens inside UnitOfWork.Commit.
type OutboxRepository interface {
	// ListPending returns up to limit unpublished messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the broker accepted the message.
	MarkPublished(ctx context.Context, id kernel.UUID, publishedAt time.Time) error
}
