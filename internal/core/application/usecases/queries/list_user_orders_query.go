package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery lists the orders owned by userID.
type ListUserOrdersQuery struct {
	userID kernel.UUID
	actor  *user.User

	guard guard.ConstructorGuard
}

func NewListUserOrdersQuery(userID kernel.UUID, actor *user.User) (ListUserOrdersQuery, error) {
	if err := errors.Join(userID.Validate(), requireActor(actor)); err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		userID: userID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) UserID() kernel.UUID { return q.userID }
func (q ListUserOrdersQuery) Actor() *user.User   { return q.actor }
