package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not built by NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a registered identity. Only the admin and active flags are part of
// the model beyond the immutable profile; nothing in the service mutates them.
type User struct {
	id         kernel.UUID
	name       string
	email      string
	secretHash string
	active     bool
	admin      bool

	isConstructed bool
}

// NewUser registers a new identity. The email is normalized with NormalizeEmail.
//
// Example:
//
//	hash, _ := hasher.Hash("pw1")
//	u, err := user.NewUser(kernel.NewUUID(), "Ann", "A@x.com", hash, true, false)
//	// u.Email() == "a@x.com"
func NewUser(id kernel.UUID, name, email, secretHash string, active, admin bool) (*User, error) {
	return RestoreUser(id, name, email, secretHash, active, admin)
}

// RestoreUser rebuilds a user read from storage.
func RestoreUser(id kernel.UUID, name, email, secretHash string, active, admin bool) (*User, error) {
	u := &User{
		active:        active,
		admin:         admin,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setSecretHash(secretHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate reports whether the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares users by identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

// SecretHash returns the stored one-way hash of the user's secret.
func (u *User) SecretHash() string {
	return u.secretHash
}

func (u *User) IsActive() bool {
	return u.active
}

// IsAdmin reports whether the user may act on any order.
func (u *User) IsAdmin() bool {
	return u.admin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain address", email))
	}

	u.email = email
	return nil
}

func (u *User) setSecretHash(secretHash string) error {
	if secretHash == "" {
		return errs.NewValueIsRequiredError("secretHash")
	}
	u.secretHash = secretHash
	return nil
}
