package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ticktock", cmd.Use)
	assert.Contains(t, cmd.Long, "background workers")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"countdown"},
		{"stopwatch"},
		{"interactive"},
		{"log"},
		{"log", "view"},
		{"log", "stats"},
		{"log", "export"},
		{"log", "filter"},
		{"version"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestInteractiveAlias(t *testing.T) {
	cmd := NewRootCommand()
	subCmd, _, err := cmd.Find([]string{"i"})
	require.NoError(t, err)
	assert.Equal(t, "interactive", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		name     string
		defValue string
	}{
		{"config", ""},
		{"log-level", ""},
		{"environment", ""},
		{"pool-size", "0"},
		{"event-log", ""},
	}

	for _, tt := range tests {
		flag := cmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, flag, "flag %s", tt.name)
		assert.Equal(t, tt.defValue, flag.DefValue, "flag %s", tt.name)
	}
}

func TestLogExportFlags(t *testing.T) {
	cmd := NewRootCommand()
	exportCmd, _, err := cmd.Find([]string{"log", "export"})
	require.NoError(t, err)

	formatFlag := exportCmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "jsonl", formatFlag.DefValue)

	outputFlag := exportCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ticktock dev (protocol 1.0)\n", out)
}
