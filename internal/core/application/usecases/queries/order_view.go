// Package queries contains read operations over orders. Every handler checks
// existence first and authorization second, and returns read models instead
// of aggregates.
package queries

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// ItemView is the read model of one order line.
type ItemView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Flavor    string
	Size      string
}

// OrderView is the read model of an order with its items.
type OrderView struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	Status     order.Status
	TotalPrice kernel.Money
	ItemCount  int
	Items      []ItemView
}

// NewOrderView projects an aggregate into its read model.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:        item.ID(),
			OrderID:   item.OrderID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Flavor:    item.Flavor(),
			Size:      item.Size(),
		})
	}

	return OrderView{
		ID:         o.ID(),
		OwnerID:    o.OwnerID(),
		Status:     o.Status(),
		TotalPrice: o.TotalPrice(),
		ItemCount:  len(items),
		Items:      views,
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
