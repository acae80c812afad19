package commands_test

import (
	"testing"

	"github.com/Towerism/nylas-go/cmd/nylas/commands"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)

	names := commandNames(cmd)
	assert.Len(t, names, 4)
	assert.Contains(t, names, "get")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "unset")
	assert.Contains(t, names, "list")
}

func TestConfigGetCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewConfigCommand(), "get")
	assert.Equal(t, "get KEY", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestConfigSetCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewConfigCommand(), "set")
	assert.Equal(t, "set KEY VALUE", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestConfigUnsetCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewConfigCommand(), "unset")
	assert.Equal(t, "unset KEY", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestConfigListCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewConfigCommand(), "list")
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
