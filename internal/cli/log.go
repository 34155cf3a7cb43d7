package cli

import (
	"github.com/spf13/cobra"
)

// NewLogCommand creates the log command and its subcommands.
func NewLogCommand(_ *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect timer event traces (.tlog)",
		Long: `View, summarize, export, and filter the CBOR event traces written
with --event-log.`,
	}

	cmd.AddCommand(newLogViewCommand())
	cmd.AddCommand(newLogStatsCommand())
	cmd.AddCommand(newLogExportCommand())
	cmd.AddCommand(newLogFilterCommand())

	return cmd
}

func newLogViewCommand() *cobra.Command {
	var (
		timerID   string
		direction string
		category  string
	)

	cmd := &cobra.Command{
		Use:          "view <file.tlog>",
		Short:        "Display events in human-readable format",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ViewFilter{TimerID: timerID}
			if direction != "" {
				d, err := parseDirection(direction)
				if err != nil {
					return err
				}
				filter.Direction = &d
			}
			if category != "" {
				c, err := parseCategory(category)
				if err != nil {
					return err
				}
				filter.Category = &c
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&timerID, "timer", "", "filter by timer id")
	cmd.Flags().StringVar(&direction, "direction", "", "filter by direction (in|out)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category (command|response|state|error)")

	return cmd
}

func newLogStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "stats <file.tlog>",
		Short:        "Show statistics about a trace",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

func newLogExportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:          "export <file.tlog>",
		Short:        "Export a trace to JSONL or CSV",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunExport(args[0], format, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&format, "format", "jsonl", "output format (jsonl|csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newLogFilterCommand() *cobra.Command {
	var opts FilterOptions

	cmd := &cobra.Command{
		Use:          "filter <file.tlog>",
		Short:        "Write matching events to a new trace file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFilter(args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVar(&opts.TimerID, "timer", "", "filter by timer id")
	cmd.Flags().StringVar(&opts.TimeStart, "time-start", "", "include events at or after this RFC3339 time")
	cmd.Flags().StringVar(&opts.TimeEnd, "time-end", "", "include events before this RFC3339 time")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "filter by direction (in|out)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category (command|response|state|error)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
