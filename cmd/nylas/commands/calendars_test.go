package commands_test

import (
	"testing"

	"github.com/Towerism/nylas-go/cmd/nylas/commands"
	"github.com/stretchr/testify/assert"
)

func TestNewCalendarsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewCalendarsCommand()
	assert.Equal(t, "calendars", cmd.Use)
	assert.Equal(t, []string{"calendar", "cal"}, cmd.Aliases)
	assert.Equal(t, "Manage calendars", cmd.Short)

	names := commandNames(cmd)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "get")
}

func TestCalendarsListCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewCalendarsCommand(), "list")
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	limitFlag := cmd.Flags().Lookup("limit")
	assert.NotNil(t, limitFlag)
	assert.Equal(t, "50", limitFlag.DefValue)

	offsetFlag := cmd.Flags().Lookup("offset")
	assert.NotNil(t, offsetFlag)
	assert.Equal(t, "0", offsetFlag.DefValue)
}

func TestCalendarsGetCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewCalendarsCommand(), "get")
	assert.Equal(t, "get CALENDAR_ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}
