package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// RegisterUserCommandHandler creates a user with a unique email.
// The email is checked up front; a concurrent registration that slips past
// the check is still rejected by the store's unique index.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
}

// NewRegisterUserCommandHandler returns a handler that stores new users with
// their secret hashed by hasher.
//
// Example:
//
//	h := commands.NewRegisterUserCommandHandler(uowFactory, hasher)
//	cmd, _ := commands.NewRegisterUserCommand(kernel.NewUUID(), "Ann", "ann@example.com", "pw", true, false)
//	u, err := h.Handle(ctx, cmd) // errors.Is(err, errs.ErrDuplicateEmail) on a taken address
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.CredentialHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the registered user, or an error wrapping
// errs.ErrDuplicateEmail when the address is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err := repo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateEmail, cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Secret())
	if err != nil {
		return nil, err
	}

	registered, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), hash, cmd.Active(), cmd.Admin())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}
