package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// RefreshTokenCommandHandler issues a fresh access token. The refresh token
// itself is not rotated.
type RefreshTokenCommandHandler struct {
	tokens ports.TokenService
	ttls   TokenTTLs
}

// NewRefreshTokenCommandHandler issues a new token pair for the subject of a
// valid refresh token, using ttls for both lifetimes.
func NewRefreshTokenCommandHandler(tokens ports.TokenService, ttls TokenTTLs) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		tokens: tokens,
		ttls:   ttls,
	}
}

func (h *RefreshTokenCommandHandler) Handle(_ context.Context, cmd RefreshTokenCommand) (TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return TokenPair{}, err
	}

	access, err := h.tokens.Issue(cmd.Actor().ID(), h.ttls.Access)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
	}, nil
}
