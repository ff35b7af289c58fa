package commands_test

import (
	"testing"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, clientID, supplierID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	items := []commands.LineItemInput{{ItemID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Quantity: 600, UnitPrice: dec("0.80")}}

	cmd, err := commands.NewCreateOrderCommand(id, clientID, supplierID, "  entregar de manhã ", items)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, supplierID, cmd.SupplierID())
	assert.Equal(t, "entregar de manhã", cmd.Notes())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingParties(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "client")
	assert.Contains(t, err.Error(), "supplier")
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
