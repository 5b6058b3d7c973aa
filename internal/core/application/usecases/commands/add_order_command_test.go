package commands_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	deadline := kernel.MustNewDate(2025, time.January, 20)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddOrderCommand(id, " Pedido 1 ", " Camiseta UV ", 4, 7, deadline)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "Pedido 1", cmd.Name())
		assert.Equal(t, "Camiseta UV", cmd.ProductName())
		assert.Equal(t, 4, cmd.Urgency())
		assert.Equal(t, 7, cmd.Cost())
		assert.True(t, cmd.Deadline().Equal(deadline))
	})

	t.Run("urgency above scale", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(id, "Pedido", "Camiseta UV", 11, 7, deadline)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("cost below scale", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(id, "Pedido", "Camiseta UV", 5, 0, deadline)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(kernel.UUID{}, "", "  ", 5, 5, kernel.Date{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
		assert.Contains(t, err.Error(), "order name")
		assert.Contains(t, err.Error(), "product name")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.AddOrderCommand{}.Validate(), commands.ErrAddOrderCommandIsNotConstructed)
	})
}

func TestNewMarkOrderCompletedCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewMarkOrderCompletedCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(id))

	_, err = commands.NewMarkOrderCompletedCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, commands.MarkOrderCompletedCommand{}.Validate(),
		commands.ErrMarkOrderCompletedCommandIsNotConstructed)
}

func TestNewUpsertProductCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpsertProductCommand(" Shorts de Malha ", 2)

		require.NoError(t, err)
		assert.Equal(t, "Shorts de Malha", cmd.Name())
		assert.InDelta(t, 2.0, cmd.StandardHours(), 1e-9)
	})

	t.Run("non-positive hours", func(t *testing.T) {
		for _, hours := range []float64{0, -1.5} {
			_, err := commands.NewUpsertProductCommand("Shorts de Malha", hours)

			require.Error(t, err)
			assert.True(t, errs.IsInvalidInput(err))
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := commands.NewUpsertProductCommand("", 2)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.UpsertProductCommand{}.Validate(),
			commands.ErrUpsertProductCommandIsNotConstructed)
	})
}
