// Package auth resolves bearer tokens to users. It is the gate every
// protected operation passes before the access policy is consulted.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/authtoken"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"
)

const (
	reasonMissingToken   = "missing_token"
	reasonExpired        = "expired"
	reasonInvalidToken   = "invalid_token"
	reasonUnknownSubject = "unknown_subject"
)

// AccessGuard validates a token and loads the user it names. The user's
// active flag is not consulted.
type AccessGuard struct {
	tokens  ports.TokenService
	users   ports.UserRepository
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewAccessGuard creates the guard. metrics and logger may be nil.
func NewAccessGuard(
	tokens ports.TokenService,
	users ports.UserRepository,
	registry *metrics.Registry,
	logger *slog.Logger,
) (*AccessGuard, error) {
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}

	return &AccessGuard{
		tokens:  tokens,
		users:   users,
		metrics: registry,
		logger:  ResolveLogger(logger).With("component", "access_guard"),
	}, nil
}

// ResolveLogger falls back to the process default logger.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// Authenticate returns the user named by token.
//
// Errors:
//   - wraps errs.ErrUnauthenticated and errs.ErrInvalidToken when the token is
//     missing, malformed, tampered with or expired
//   - wraps errs.ErrUnauthenticated when the subject no longer exists
//   - any other store error unchanged
func (g *AccessGuard) Authenticate(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		g.reject(ctx, reasonMissingToken, errs.ErrInvalidToken)
		return nil, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, errs.ErrInvalidToken)
	}

	subject, err := g.tokens.Validate(token)
	if err != nil {
		reason := reasonInvalidToken
		if errors.Is(err, authtoken.ErrTokenExpired) {
			reason = reasonExpired
		}
		g.reject(ctx, reason, err)
		return nil, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}

	u, err := g.users.Get(ctx, subject)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			g.reject(ctx, reasonUnknownSubject, err, "user_id", subject.String())
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	return u, nil
}

func (g *AccessGuard) reject(ctx context.Context, reason string, err error, attrs ...any) {
	if g.metrics != nil {
		g.metrics.AuthFailures.WithLabelValues(reason).Inc()
	}

	args := append([]any{
		"event", "authentication_rejected",
		"reason", reason,
		"error", err,
	}, attrs...)
	g.logger.InfoContext(ctx, "bearer token rejected", args...)
}
