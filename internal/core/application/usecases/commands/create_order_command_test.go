package commands_test

import (
	"testing"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	customerID := kernel.NewUUID()
	actor := customerActor(t, customerID)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, customerID,
			"Wireless headphones", "", 2, decimal.NewFromInt(50), "1 Main St", "", "")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, 2, cmd.Quantity())
	})

	t.Run("carries delivery phone and notes", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, customerID,
			"Wireless headphones", "", 2, decimal.NewFromInt(50),
			"1 Main St", "+14155550123", "leave at the door")
		require.NoError(t, err)
		require.Equal(t, "+14155550123", cmd.DeliveryPhone())
		require.Equal(t, "leave at the door", cmd.DeliveryNotes())
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, customerID,
			"Wireless headphones", "", 0, decimal.NewFromInt(50), "1 Main St", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative unit price", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, customerID,
			"Wireless headphones", "", 1, decimal.NewFromInt(-5), "1 Main St", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing delivery address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, customerID,
			"Wireless headphones", "", 1, decimal.NewFromInt(50), "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.Error(t, cmd.Validate())
	})
}
