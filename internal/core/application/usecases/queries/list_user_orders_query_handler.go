package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// ListUserOrdersQueryHandler lists a user's orders, oldest first. The policy
// is evaluated against the target user id, so an unknown user yields an empty
// list for admins and Forbidden for everyone else.
type ListUserOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListUserOrdersQueryHandler returns a handler listing the orders owned by
// one user.
func NewListUserOrdersQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{orders: orders, policy: policy}
}

func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.Actor(), ActionView, query.UserID()); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByOwner(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
