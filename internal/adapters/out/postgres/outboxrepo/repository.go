package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// eventPayload is the JSON body published for every order event.
type eventPayload struct {
	EventID    string  `json:"event_id"`
	EventType  string  `json:"event_type"`
	OrderID    string  `json:"order_id"`
	OwnerID    string  `json:"owner_id"`
	Status     string  `json:"status"`
	TotalPrice string  `json:"total_price"`
	ItemCount  int     `json:"item_count"`
	ItemID     *string `json:"item_id,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// AppendOrderEvents writes one pending row per event.
func (r *GormOutboxRepository) AppendOrderEvents(ctx context.Context, events []order.Event, at time.Time) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		msg, err := NewOrderEventMessage(event, at)
		if err != nil {
			return err
		}
		dtos = append(dtos, fromPort(msg))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListPending returns up to limit unpublished messages, oldest first. Rows are
// locked for the transaction; rows locked by a concurrent relay are skipped.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, convErr := toPort(dto)
		if convErr != nil {
			return nil, convErr
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Update("published_at", at)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}

// NewOrderEventMessage builds the outbox message for one order event.
func NewOrderEventMessage(event order.Event, at time.Time) (ports.OutboxMessage, error) {
	payload := eventPayload{
		EventID:    event.ID.String(),
		EventType:  string(event.Type),
		OrderID:    event.OrderID.String(),
		OwnerID:    event.OwnerID.String(),
		Status:     event.Status.String(),
		TotalPrice: event.TotalPrice.String(),
		ItemCount:  event.ItemCount,
		OccurredAt: at.UTC().Format(time.RFC3339Nano),
	}
	if event.ItemID != nil {
		itemID := event.ItemID.String()
		payload.ItemID = &itemID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          event.ID,
		AggregateID: event.OrderID,
		EventType:   string(event.Type),
		Payload:     body,
		CreatedAt:   at,
	}, nil
}
