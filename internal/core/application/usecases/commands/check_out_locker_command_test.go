package commands_test

import (
	"testing"

	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckOutLockerCommand(t *testing.T) {
	cmd, err := commands.NewCheckOutLockerCommand(4)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 4, cmd.LockerNumber())
	_, ok := cmd.Ticket()
	assert.False(t, ok)
}

func TestNewCheckOutLockerCommand_NegativeNumber(t *testing.T) {
	_, err := commands.NewCheckOutLockerCommand(-1)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCheckOutByTicketCommand(t *testing.T) {
	ticket := kernel.NewUUID()

	cmd, err := commands.NewCheckOutByTicketCommand(ticket)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	got, ok := cmd.Ticket()
	assert.True(t, ok)
	assert.True(t, ticket.IsEqual(got))
}

func TestNewCheckOutByTicketCommand_ZeroTicket(t *testing.T) {
	_, err := commands.NewCheckOutByTicketCommand(kernel.UUID{})

	require.Error(t, err)
}
