package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand asks for a new access token for a user already
// authenticated by a refresh token.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	actor *user.User

	guard guard.ConstructorGuard
}

func NewRefreshTokenCommand(actor *user.User) (RefreshTokenCommand, error) {
	if err := requireActor(actor); err != nil {
		return RefreshTokenCommand{}, err
	}

	return RefreshTokenCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) Actor() *user.User {
	return c.actor
}
