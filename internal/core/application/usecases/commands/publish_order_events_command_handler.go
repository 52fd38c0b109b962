package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/metrics"
)

// PublishOrderEventsCommandHandler relays pending outbox messages to the
// broker, oldest first. A message is marked published only after the broker
// accepted it. The pass stops at the first publish failure; messages already
// marked in that pass are still committed.
type PublishOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
	metrics    *metrics.Registry
	logger     *slog.Logger
}

// NewPublishOrderEventsCommandHandler returns the outbox relay handler.
// registry and logger may be nil.
func NewPublishOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
	registry *metrics.Registry,
	logger *slog.Logger,
) PublishOrderEventsCommandHandler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return PublishOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		metrics:    registry,
		logger:     logger.With("component", "outbox_relay"),
	}
}

// Handle returns the number of messages published in this pass.
func (h *PublishOrderEventsCommandHandler) Handle(ctx context.Context, cmd PublishOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.ListPending(ctx, cmd.BatchSize())
	if err != nil {
		h.logger.ErrorContext(ctx, "outbox list failed",
			"event", "outbox_list_failed",
			"error", err.Error(),
		)
		return 0, err
	}

	published := 0
	var publishErr error
	for _, msg := range pending {
		if err = h.publisher.Publish(ctx, msg.AggregateID.String(), msg.EventType, msg.Payload); err != nil {
			h.countFailure()
			h.logger.ErrorContext(ctx, "outbox publish failed",
				"event", "outbox_publish_failed",
				"outbox_id", msg.ID.String(),
				"event_type", msg.EventType,
				"error", err.Error(),
			)
			publishErr = fmt.Errorf("publishing outbox message %s: %w", msg.ID, err)
			break
		}

		if err = outbox.MarkPublished(ctx, msg.ID, h.clock.Now()); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.countPublished(published)
	if published > 0 {
		h.logger.InfoContext(ctx, "outbox relayed",
			"event", "outbox_relayed",
			"published", published,
			"pending", len(pending),
		)
	}

	return published, publishErr
}

func (h *PublishOrderEventsCommandHandler) countFailure() {
	if h.metrics != nil {
		h.metrics.OutboxFailures.Inc()
	}
}

func (h *PublishOrderEventsCommandHandler) countPublished(n int) {
	if h.metrics != nil && n > 0 {
		h.metrics.OutboxPublished.Add(float64(n))
	}
}
