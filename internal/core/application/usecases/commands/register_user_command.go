package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// MaxSecretBytes is the longest secret bcrypt accepts.
const MaxSecretBytes = 72

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand carries a sign-up request. The secret is held in
// plain text only until the handler hashes it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	secret string
	active bool
	admin  bool

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	secret string,
	active bool,
	admin bool,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		active: active,
		admin:  admin,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setSecret(secret),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Name() string        { return c.name }
func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Secret() string      { return c.secret }
func (c RegisterUserCommand) Active() bool        { return c.active }
func (c RegisterUserCommand) Admin() bool         { return c.admin }

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = user.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setSecret(secret string) error {
	if secret == "" {
		return errs.NewValueIsRequiredError("secret")
	}
	if len(secret) > MaxSecretBytes {
		return errs.NewValueIsOutOfRangeError("secret", len(secret), 1, MaxSecretBytes)
	}
	c.secret = secret
	return nil
}
