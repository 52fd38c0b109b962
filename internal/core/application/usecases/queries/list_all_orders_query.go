package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery lists every order in the system. Admin only.
type ListAllOrdersQuery struct {
	actor *user.User

	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery(actor *user.User) (ListAllOrdersQuery, error) {
	if err := requireActor(actor); err != nil {
		return ListAllOrdersQuery{}, err
	}

	return ListAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

func (q ListAllOrdersQuery) Actor() *user.User { return q.actor }
