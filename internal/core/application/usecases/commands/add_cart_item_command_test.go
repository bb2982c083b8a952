package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		userID := kernel.NewUUID()
		branchID := kernel.NewUUID()
		foodID := kernel.NewUUID()

		cmd, err := commands.NewAddCartItemCommand(userID, branchID, foodID, 3)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.UserID().IsEqual(userID))
		assert.True(t, cmd.BranchID().IsEqual(branchID))
		assert.True(t, cmd.FoodID().IsEqual(foodID))
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("rejects empty user ID", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 1)

		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AddCartItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
