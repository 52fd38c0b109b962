package order_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func eventTypes(o *order.Order) []order.EventType {
	var types []order.EventType
	for _, e := range o.DomainEvents() {
		types = append(types, e.Type)
	}
	return types
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with zero total", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		o, err := order.NewOrder(id, owner)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OwnerID().IsEqual(owner))
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.TotalPrice().IsZero())
		assert.Zero(t, o.ItemCount())
		assert.Empty(t, o.Items())
	})

	t.Run("should record created event", func(t *testing.T) {
		o := newPendingOrder(t)

		events := o.DomainEvents()

		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Type)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.True(t, events[0].OwnerID.IsEqual(o.OwnerID()))
		assert.Equal(t, order.Pending, events[0].Status)
		assert.Nil(t, events[0].ItemID)
	})

	t.Run("should fail without ids", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "ownerID")
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item and recompute total", func(t *testing.T) {
		o := newPendingOrder(t)
		itemID := kernel.NewUUID()

		item, err := o.AddItem(itemID, 2, kernel.MustMoney("5.0"), "pepperoni", "large")

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(itemID))
		assert.True(t, item.OrderID().IsEqual(o.ID()))
		assert.True(t, o.TotalPrice().IsEqual(kernel.MustMoney("10")))
		assert.Equal(t, 1, o.ItemCount())

		found, ok := o.Item(itemID)
		require.True(t, ok)
		assert.Same(t, item, found)
	})

	t.Run("should reject invalid quantity without touching state", func(t *testing.T) {
		o := newPendingOrder(t)

		_, err := o.AddItem(kernel.NewUUID(), 0, kernel.MustMoney("5.0"), "", "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.Zero(t, o.ItemCount())
		assert.True(t, o.TotalPrice().IsZero())
		assert.Equal(t, []order.EventType{order.EventCreated}, eventTypes(o))
	})

	t.Run("should reject duplicate item id", func(t *testing.T) {
		o := newPendingOrder(t)
		itemID := kernel.NewUUID()
		_, err := o.AddItem(itemID, 1, kernel.MustMoney("1"), "", "")
		require.NoError(t, err)

		_, err = o.AddItem(itemID, 1, kernel.MustMoney("1"), "", "")

		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("items can still be added to terminal orders", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		_, err := o.AddItem(kernel.NewUUID(), 1, kernel.MustMoney("4"), "", "")

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.TotalPrice().IsEqual(kernel.MustMoney("4")))
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove item and recompute total", func(t *testing.T) {
		o := newPendingOrder(t)
		first, _ := o.AddItem(kernel.NewUUID(), 2, kernel.MustMoney("5.0"), "", "")
		_, _ = o.AddItem(kernel.NewUUID(), 1, kernel.MustMoney("3.5"), "", "")

		err := o.RemoveItem(first.ID())

		require.NoError(t, err)
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, "3.5", o.TotalPrice().String())
		_, ok := o.Item(first.ID())
		assert.False(t, ok)
	})

	t.Run("should return not found for foreign item", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.RemoveItem(kernel.NewUUID())

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestOrder_Scenario(t *testing.T) {
	o := newPendingOrder(t)
	assert.Equal(t, "PENDING", o.Status().String())
	assert.Equal(t, "0", o.TotalPrice().String())

	first, err := o.AddItem(kernel.NewUUID(), 2, kernel.MustMoney("5.0"), "pepperoni", "large")
	require.NoError(t, err)
	assert.Equal(t, "10", o.TotalPrice().String())

	_, err = o.AddItem(kernel.NewUUID(), 1, kernel.MustMoney("3.5"), "margherita", "small")
	require.NoError(t, err)
	assert.Equal(t, "13.5", o.TotalPrice().String())

	require.NoError(t, o.RemoveItem(first.ID()))
	assert.Equal(t, "3.5", o.TotalPrice().String())

	assert.Equal(t, []order.EventType{
		order.EventCreated,
		order.EventItemAdded,
		order.EventItemAdded,
		order.EventItemRemoved,
	}, eventTypes(o))
}

// TestOrder_TotalPriceProperty checks the total after every step of random
// add/remove sequences against an independently kept sum.
func TestOrder_TotalPriceProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec // deterministic test data

	for run := range 200 {
		o := newPendingOrder(t)
		expected := decimal.Zero
		lines := map[kernel.UUID]decimal.Decimal{}
		var ids []kernel.UUID

		for range 30 {
			if len(ids) > 0 && rng.IntN(3) == 0 {
				idx := rng.IntN(len(ids))
				id := ids[idx]
				require.NoError(t, o.RemoveItem(id))
				expected = expected.Sub(lines[id])
				delete(lines, id)
				ids = append(ids[:idx], ids[idx+1:]...)
			} else {
				qty := rng.IntN(9) + 1
				price := decimal.New(int64(rng.IntN(100000)), -2)
				id := kernel.NewUUID()
				unit, err := kernel.NewMoney(price)
				require.NoError(t, err)
				_, err = o.AddItem(id, qty, unit, "", "")
				require.NoError(t, err)
				line := price.Mul(decimal.NewFromInt(int64(qty)))
				expected = expected.Add(line)
				lines[id] = line
				ids = append(ids, id)
			}

			require.Truef(t, o.TotalPrice().Amount().Equal(expected),
				"run %d: total %s, expected %s", run, o.TotalPrice(), expected)

			recomputed := decimal.Zero
			for _, item := range o.Items() {
				recomputed = recomputed.Add(item.LineTotal().Amount())
			}
			require.True(t, o.TotalPrice().Amount().Equal(recomputed))
		}
	}
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order becomes cancelled", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []order.EventType{order.EventCreated, order.EventCancelled}, eventTypes(o))
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, []order.EventType{order.EventCreated, order.EventCancelled}, eventTypes(o))
	})

	t.Run("finalized order cannot be cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Finalize())

		err := o.Cancel()

		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Equal(t, order.Finalized, o.Status())
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("pending order becomes finalized", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Finalize())

		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("finalize is idempotent", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Finalize())

		require.NoError(t, o.Finalize())

		assert.Equal(t, order.Finalized, o.Status())
		assert.Equal(t, []order.EventType{order.EventCreated, order.EventFinalized}, eventTypes(o))
	})

	t.Run("cancelled order cannot be finalized", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Finalize()

		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	owner := kernel.NewUUID()
	item, err := order.RestoreItem(kernel.NewUUID(), id, 2, kernel.MustMoney("5"), "", "")
	require.NoError(t, err)

	t.Run("should restore consistent order without events", func(t *testing.T) {
		o, err := order.RestoreOrder(id, owner, order.Finalized, kernel.MustMoney("10.00"), []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, order.Finalized, o.Status())
		assert.Equal(t, 1, o.ItemCount())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject stale total", func(t *testing.T) {
		_, err := order.RestoreOrder(id, owner, order.Pending, kernel.MustMoney("9"), []*order.Item{item})

		assert.True(t, errors.Is(err, order.ErrTotalPriceMismatch))
	})

	t.Run("should reject item of another order", func(t *testing.T) {
		foreign, _ := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustMoney("1"), "", "")

		_, err := order.RestoreOrder(id, owner, order.Pending, kernel.MustMoney("1"), []*order.Item{foreign})

		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, owner, order.Unknown, kernel.ZeroMoney(), nil)

		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestOrder_DomainEvents(t *testing.T) {
	o := newPendingOrder(t)
	itemID := kernel.NewUUID()
	_, _ = o.AddItem(itemID, 3, kernel.MustMoney("2"), "", "")

	events := o.DomainEvents()
	require.Len(t, events, 2)
	require.NotNil(t, events[1].ItemID)
	assert.True(t, events[1].ItemID.IsEqual(itemID))
	assert.Equal(t, 1, events[1].ItemCount)
	assert.Equal(t, "6", events[1].TotalPrice.String())

	events[0].Type = "tampered"
	assert.Equal(t, order.EventCreated, o.DomainEvents()[0].Type)

	o.ClearDomainEvents()
	assert.Empty(t, o.DomainEvents())
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o := newPendingOrder(t)
	_, _ = o.AddItem(kernel.NewUUID(), 1, kernel.MustMoney("1"), "", "")

	items := o.Items()
	items[0] = nil

	assert.NotNil(t, o.Items()[0])
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}
