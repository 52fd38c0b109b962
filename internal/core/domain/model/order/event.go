package order

import (
	"orderdesk/internal/core/domain/model/kernel"
)

// EventType names an order change. The values double as outbox and Kafka
// header event types.
type EventType string

const (
	EventCreated     EventType = "order.created"
	EventCancelled   EventType = "order.cancelled"
	EventFinalized   EventType = "order.finalized"
	EventItemAdded   EventType = "order.item_added"
	EventItemRemoved EventType = "order.item_removed"
)

// Event is a snapshot of the order taken right after a change. ItemID is set
// for item events only.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	OwnerID    kernel.UUID
	Status     Status
	TotalPrice kernel.Money
	ItemCount  int
	ItemID     *kernel.UUID
}

func (o *Order) record(eventType EventType, itemID *kernel.UUID) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    o.id,
		OwnerID:    o.ownerID,
		Status:     o.status,
		TotalPrice: o.totalPrice,
		ItemCount:  len(o.items),
		ItemID:     itemID,
	})
}

// DomainEvents returns the events recorded since the order was loaded, oldest first.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops recorded events once they are stored in the outbox.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}
