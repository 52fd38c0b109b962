package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	actor := newTestUser(t, "a@x.com", false)

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), actor)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{}, nil)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	owner := newTestUser(t, "a@x.com", false)
	stranger := newTestUser(t, "b@x.com", false)
	admin := newTestUser(t, "root@x.com", true)

	t.Run("owner cancels pending order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderOwnedBy(t, owner)
		repo := new(MockOrderRepository)
		mock.InOrder(
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(nil).Once(),
		)
		factory, uow := orderUoWWithRepo(ctx, repo)
		uow.On("Commit", ctx).Return(nil).Once()
		cmd, _ := commands.NewCancelOrderCommand(o.ID(), owner)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, got.Status())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("admin cancels someone else's order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderOwnedBy(t, owner)
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		repo.On("Update", ctx, o).Return(nil).Once()
		factory, uow := orderUoWWithRepo(ctx, repo)
		uow.On("Commit", ctx).Return(nil).Once()
		cmd, _ := commands.NewCancelOrderCommand(o.ID(), admin)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, got.Status())
	})

	t.Run("stranger is forbidden and nothing changes", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderOwnedBy(t, owner)
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		factory, uow := orderUoWWithRepo(ctx, repo)
		cmd, _ := commands.NewCancelOrderCommand(o.ID(), stranger)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("missing order is not found for every caller", func(t *testing.T) {
		for _, caller := range []*user.User{stranger, admin} {
			ctx := t.Context()
			id := kernel.NewUUID()
			repo := new(MockOrderRepository)
			repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
			factory, _ := orderUoWWithRepo(ctx, repo)
			cmd, _ := commands.NewCancelOrderCommand(id, caller)

			h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrObjectNotFound, caller.Email())
			assert.NotErrorIs(t, err, errs.ErrForbidden, caller.Email())
		}
	})

	t.Run("cancelling twice succeeds", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderOwnedBy(t, owner)
		require.NoError(t, o.Cancel())
		o.ClearDomainEvents()
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		repo.On("Update", ctx, o).Return(nil).Once()
		factory, uow := orderUoWWithRepo(ctx, repo)
		uow.On("Commit", ctx).Return(nil).Once()
		cmd, _ := commands.NewCancelOrderCommand(o.ID(), owner)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, got.Status())
		assert.Empty(t, got.DomainEvents())
	})

	t.Run("finalized order conflicts", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderOwnedBy(t, owner)
		require.NoError(t, o.Finalize())
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		factory, uow := orderUoWWithRepo(ctx, repo)
		cmd, _ := commands.NewCancelOrderCommand(o.ID(), owner)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
