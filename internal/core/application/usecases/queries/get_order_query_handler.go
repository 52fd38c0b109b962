package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// ActionView is the policy action name for reading orders.
const ActionView = "view"

// GetOrderQueryHandler returns an order to its owner or an admin.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler returns a handler reading a single order on behalf
// of its owner or an admin.
func NewGetOrderQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: policy}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	if err = h.policy.Authorize(query.Actor(), ActionView, o.OwnerID()); err != nil {
		return OrderView{}, err
	}

	return NewOrderView(o), nil
}
