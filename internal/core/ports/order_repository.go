package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded and stored together with their items.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and reconciles its item rows: new items
	// are inserted, removed items are deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order owning the given item.
	// Returns *errs.ObjectNotFoundError (param "item") when no order holds it.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// ListByOwner returns every order of one user, oldest first.
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, oldest first.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
