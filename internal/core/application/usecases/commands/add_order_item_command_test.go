package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderItemCommand(t *testing.T) {
	actor := newTestUser(t, "a@x.com", false)
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewAddOrderItemCommand(orderID, itemID, 2, kernel.MustMoney("5.0"), "pepperoni", "large", actor)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, itemID, cmd.ItemID())
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, "5", cmd.UnitPrice().String())
		assert.Equal(t, "pepperoni", cmd.Flavor())
		assert.Equal(t, "large", cmd.Size())
	})

	t.Run("joins every problem", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(kernel.UUID{}, kernel.UUID{}, 0, kernel.Money{}, "", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		for _, field := range []string{"orderID", "itemID", "quantity", "unitPrice", "actor"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("zero value", func(t *testing.T) {
		assert.ErrorIs(t, commands.AddOrderItemCommand{}.Validate(), commands.ErrAddOrderItemCommandIsNotConstructed)
	})
}
