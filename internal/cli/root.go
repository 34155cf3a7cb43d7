// Package cli implements the ticktock command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	Environment string
	PoolSize    int
	EventLog    string
}

// NewRootCommand creates the root command for the ticktock CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ticktock",
		Short: "ticktock - background countdown and stopwatch timers",
		Long: `Run countdown and stopwatch timers whose ticks are produced on
background workers, manage many of them interactively, and inspect the
event traces they record.`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Environment, "environment", "", "execution environment (auto|goroutine|pool)")
	cmd.PersistentFlags().IntVar(&opts.PoolSize, "pool-size", 0, "worker pool capacity (pool environment)")
	cmd.PersistentFlags().StringVar(&opts.EventLog, "event-log", "", "append timer events to this .tlog file")

	// Add subcommands
	cmd.AddCommand(NewTimerCommand(opts, KindCountdownName))
	cmd.AddCommand(NewTimerCommand(opts, KindStopwatchName))
	cmd.AddCommand(NewInteractiveCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
