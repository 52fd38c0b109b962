package queries_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newUser(t *testing.T, admin bool) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "user", id.String()+"@example.com", "hash", true, admin)
	require.NoError(t, err)
	return u
}

func newOrderWithItem(t *testing.T, owner *user.User) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), owner.ID())
	require.NoError(t, err)
	_, err = o.AddItem(kernel.NewUUID(), 2, kernel.MustMoney("5"), "vanilla", "large")
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
