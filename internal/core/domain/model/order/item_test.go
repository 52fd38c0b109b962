package order_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreItem(t *testing.T) {
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("should restore valid item", func(t *testing.T) {
		item, err := order.RestoreItem(itemID, orderID, 3, kernel.MustMoney("2.25"), "calabresa", "medium")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, itemID.IsEqual(item.ID()))
		assert.True(t, orderID.IsEqual(item.OrderID()))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "calabresa", item.Flavor())
		assert.Equal(t, "medium", item.Size())
		assert.True(t, item.LineTotal().IsEqual(kernel.MustMoney("6.75")))
	})

	t.Run("should allow free items and empty descriptors", func(t *testing.T) {
		item, err := order.RestoreItem(itemID, orderID, 1, kernel.ZeroMoney(), "", "")

		require.NoError(t, err)
		assert.True(t, item.LineTotal().IsZero())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := order.RestoreItem(itemID, orderID, q, kernel.MustMoney("1"), "", "")

			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("should join missing references", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.UUID{}, kernel.UUID{}, 1, kernel.Money{}, "", "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, kernel.ErrUUIDIsNotConstructed))
		assert.True(t, errors.Is(err, kernel.ErrMoneyIsNotConstructed))
		assert.Contains(t, err.Error(), "orderID")
		assert.Contains(t, err.Error(), "unitPrice")
	})
}

func TestItem_Validate(t *testing.T) {
	var nilItem *order.Item

	assert.Equal(t, order.ErrItemIsNotConstructed, nilItem.Validate())
	assert.Equal(t, order.ErrItemIsNotConstructed, (&order.Item{}).Validate())
}
