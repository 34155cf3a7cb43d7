package cli

import (
	"fmt"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Manage many timers from a prompt",
		Long: `Start a prompt for creating and controlling any number of timers.
Ticks from running timers are printed as they arrive.`,
		Aliases:      []string{"i"},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "ticktock> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			rt, err := rootOpts.newRuntime(cmd, rl.Stderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			session := NewSession(rt.manager, rl.Stdout())
			session.printHelp()

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				default:
				}

				line, err := rl.Readline()
				if err != nil {
					// EOF or interrupt
					if err == readline.ErrInterrupt {
						continue
					}
					fmt.Fprintln(rl.Stdout(), "Exiting...")
					return nil
				}

				if session.Exec(line) {
					fmt.Fprintln(rl.Stdout(), "Exiting...")
					return nil
				}
			}
		},
	}

	return cmd
}
