package ports

import "context"

// EventPublisher delivers an outbox payload to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, eventType string, payload []byte) error
}
