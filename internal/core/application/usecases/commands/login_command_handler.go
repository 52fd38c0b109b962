package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

const dummySecret = "orderdesk-login-timing-equalizer"

// LoginCommandHandler verifies credentials and issues an access and a
// refresh token. An unknown email and a wrong secret produce the same
// errs.ErrInvalidCredentials, and both paths run one hash comparison.
type LoginCommandHandler struct {
	users  ports.UserRepository
	hasher ports.CredentialHasher
	tokens ports.TokenService
	ttls   TokenTTLs

	// dummyHash is compared against when the email is unknown so that
	// path costs the same as a wrong secret.
	dummyHash string
}

// NewLoginCommandHandler hashes a throwaway secret up front; it fails when
// the hasher cannot produce that hash.
func NewLoginCommandHandler(
	users ports.UserRepository,
	hasher ports.CredentialHasher,
	tokens ports.TokenService,
	ttls TokenTTLs,
) (LoginCommandHandler, error) {
	if hasher == nil {
		return LoginCommandHandler{}, errs.NewValueIsRequiredError("hasher")
	}

	dummyHash, err := hasher.Hash(dummySecret)
	if err != nil {
		return LoginCommandHandler{}, fmt.Errorf("preparing login handler: %w", err)
	}

	return LoginCommandHandler{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		ttls:      ttls,
		dummyHash: dummyHash,
	}, nil
}

func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return TokenPair{}, err
	}

	u, err := h.authenticate(ctx, cmd.Email(), cmd.Secret())
	if err != nil {
		return TokenPair{}, err
	}

	access, err := h.tokens.Issue(u.ID(), h.ttls.Access)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := h.tokens.Issue(u.ID(), h.ttls.Refresh)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    TokenTypeBearer,
	}, nil
}

func (h *LoginCommandHandler) authenticate(ctx context.Context, email, secret string) (*user.User, error) {
	u, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		h.hasher.Verify(secret, h.dummyHash)
		return nil, errs.ErrInvalidCredentials
	}

	if !h.hasher.Verify(secret, u.SecretHash()) {
		return nil, errs.ErrInvalidCredentials
	}

	return u, nil
}
