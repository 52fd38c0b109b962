package auth_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/application/auth"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/authtoken"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func setup(t *testing.T) (*authtoken.Service, *MockUserRepository, *metrics.Registry, *auth.AccessGuard) {
	t.Helper()
	tokens, err := authtoken.NewService("guard-secret")
	require.NoError(t, err)
	users := &MockUserRepository{}
	registry := metrics.NewRegistry()
	guard, err := auth.NewAccessGuard(tokens, users, registry, nil)
	require.NoError(t, err)
	return tokens, users, registry, guard
}

func TestNewAccessGuard(t *testing.T) {
	tokens, err := authtoken.NewService("s")
	require.NoError(t, err)

	_, err = auth.NewAccessGuard(nil, &MockUserRepository{}, nil, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = auth.NewAccessGuard(tokens, nil, nil, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAccessGuard_Authenticate(t *testing.T) {
	ctx := t.Context()

	t.Run("resolves the token subject", func(t *testing.T) {
		tokens, users, _, guard := setup(t)
		u, err := user.NewUser(kernel.NewUUID(), "Ann", "a@x.com", "hash", true, false)
		require.NoError(t, err)
		token, err := tokens.Issue(u.ID(), time.Minute)
		require.NoError(t, err)
		users.On("Get", ctx, u.ID()).Return(u, nil).Once()

		got, err := guard.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Same(t, u, got)
		users.AssertExpectations(t)
	})

	t.Run("inactive users authenticate", func(t *testing.T) {
		tokens, users, _, guard := setup(t)
		u, err := user.NewUser(kernel.NewUUID(), "Off", "off@x.com", "hash", false, false)
		require.NoError(t, err)
		token, _ := tokens.Issue(u.ID(), time.Minute)
		users.On("Get", ctx, u.ID()).Return(u, nil).Once()

		got, err := guard.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.False(t, got.IsActive())
	})

	t.Run("rejects missing token", func(t *testing.T) {
		_, users, registry, guard := setup(t)

		_, err := guard.Authenticate(ctx, "")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.Equal(t, 1.0, testutil.ToFloat64(registry.AuthFailures.WithLabelValues("missing_token")))
		users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("rejects tampered token before any lookup", func(t *testing.T) {
		tokens, users, registry, guard := setup(t)
		token, _ := tokens.Issue(kernel.NewUUID(), time.Minute)

		_, err := guard.Authenticate(ctx, token+"AA")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.Equal(t, 1.0, testutil.ToFloat64(registry.AuthFailures.WithLabelValues("invalid_token")))
		users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		tokens, _, registry, guard := setup(t)
		token, err := tokens.IssueAt(kernel.NewUUID(), time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = guard.Authenticate(ctx, token)

		assert.ErrorIs(t, err, authtoken.ErrTokenExpired)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.Equal(t, 1.0, testutil.ToFloat64(registry.AuthFailures.WithLabelValues("expired")))
	})

	t.Run("rejects token for unknown user", func(t *testing.T) {
		tokens, users, registry, guard := setup(t)
		subject := kernel.NewUUID()
		token, _ := tokens.Issue(subject, time.Minute)
		users.On("Get", ctx, subject).Return(nil, errs.NewObjectNotFoundError("user", subject.String())).Once()

		_, err := guard.Authenticate(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.False(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.NotContains(t, err.Error(), subject.String())
		assert.Equal(t, 1.0, testutil.ToFloat64(registry.AuthFailures.WithLabelValues("unknown_subject")))
	})

	t.Run("unknown user id goes to the log only", func(t *testing.T) {
		tokens, err := authtoken.NewService("guard-secret")
		require.NoError(t, err)
		users := &MockUserRepository{}
		var logs bytes.Buffer
		guard, err := auth.NewAccessGuard(tokens, users, nil, slog.New(slog.NewJSONHandler(&logs, nil)))
		require.NoError(t, err)

		subject := kernel.NewUUID()
		token, _ := tokens.Issue(subject, time.Minute)
		users.On("Get", ctx, subject).Return(nil, errs.NewObjectNotFoundError("user", subject.String())).Once()

		_, err = guard.Authenticate(ctx, token)

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.Equal(t, errs.ErrUnauthenticated.Error(), err.Error())
		assert.Contains(t, logs.String(), `"user_id":"`+subject.String()+`"`)
		assert.Contains(t, logs.String(), `"reason":"unknown_subject"`)
	})

	t.Run("passes store failures through", func(t *testing.T) {
		tokens, users, _, guard := setup(t)
		subject := kernel.NewUUID()
		token, _ := tokens.Issue(subject, time.Minute)
		storeErr := errors.New("connection refused")
		users.On("Get", ctx, subject).Return(nil, storeErr).Once()

		_, err := guard.Authenticate(ctx, token)

		assert.ErrorIs(t, err, storeErr)
		assert.False(t, errors.Is(err, errs.ErrUnauthenticated))
	})
}
