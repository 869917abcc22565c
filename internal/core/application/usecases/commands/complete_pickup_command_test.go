package commands_test

import (
	"testing"

	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletePickupCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actor := testActor(t, kernel.RoleCourier)

		cmd, err := commands.NewCompletePickupCommand(orderID, actor, 22, "evidence/pickup-1.jpg")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 22, cmd.ActualLiters())
		assert.Equal(t, "evidence/pickup-1.jpg", cmd.PickupPhotoRef())
	})

	t.Run("rejects non-positive actual liters", func(t *testing.T) {
		_, err := commands.NewCompletePickupCommand(kernel.NewUUID(), testActor(t, kernel.RoleCourier), 0, "evidence/pickup-1.jpg")
		require.ErrorIs(t, err, commands.ErrActualLitersIsInvalid)
	})

	t.Run("rejects missing photo evidence", func(t *testing.T) {
		_, err := commands.NewCompletePickupCommand(kernel.NewUUID(), testActor(t, kernel.RoleCourier), 22, "")
		require.ErrorIs(t, err, commands.ErrPickupPhotoIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CompletePickupCommand
		assert.Equal(t, commands.ErrCompletePickupCommandIsNotConstructed, cmd.Validate())
	})
}
