package commands_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/item"
	"orderhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateItemStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, "plu-1", item.Ready)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "plu-1", cmd.PLU())
	assert.Equal(t, item.Ready, cmd.Status())
}

func TestNewUpdateItemStatusCommand_EmptyPLU(t *testing.T) {
	_, err := commands.NewUpdateItemStatusCommand(kernel.NewUUID(), "", item.Ready)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPLUIsRequired)
}

func TestNewUpdateItemStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateItemStatusCommand(kernel.NewUUID(), "plu-1", item.Unknown)
	require.Error(t, err)
}
