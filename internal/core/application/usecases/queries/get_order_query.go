package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order on behalf of actor.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   *user.User

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor *user.User) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requireActor(actor)); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() *user.User    { return q.actor }

func requireActor(actor *user.User) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", errors.Join(errs.ErrUnauthenticated, err))
	}
	return nil
}
