// Package outboxrepo stores order events until the relay hands them to the
// broker.
package outboxrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one outbox row. Seq orders events written in the same
// transaction.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"autoIncrement;not null;uniqueIndex"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(msg ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          msg.ID.Bytes(),
		AggregateID: msg.AggregateID.Bytes(),
		EventType:   msg.EventType,
		Payload:     msg.Payload,
		CreatedAt:   msg.CreatedAt,
		PublishedAt: msg.PublishedAt,
	}
}

func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
