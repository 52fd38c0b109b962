package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// ActionListAll is the policy action name for the admin order listing.
const ActionListAll = "list all orders"

type ListAllOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListAllOrdersQueryHandler returns the admin-only listing handler.
func NewListAllOrdersQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{orders: orders, policy: policy}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeAdmin(query.Actor(), ActionListAll); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
