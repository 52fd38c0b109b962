package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges an email and secret for tokens.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email  string
	secret string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, secret string) (LoginCommand, error) {
	cmd := LoginCommand{
		email:  user.NormalizeEmail(email),
		secret: secret,
		guard:  guard.NewConstructorGuard(),
	}

	var err error
	if cmd.email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if cmd.secret == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("secret"))
	}
	if err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string {
	return c.email
}

func (c LoginCommand) Secret() string {
	return c.secret
}
