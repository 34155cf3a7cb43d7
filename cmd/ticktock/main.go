// Command ticktock runs countdown and stopwatch timers on background workers.
//
// Usage:
//
//	ticktock <command> [flags]
//
// Commands:
//
//	countdown    Count down from a duration to zero
//	stopwatch    Count up from zero to a duration
//	interactive  Create and control many timers from a prompt
//	log          View, summarize, export, and filter event traces
//
// Examples:
//
//	# A three minute countdown
//	ticktock countdown 3m
//
//	# A stopwatch on a bounded worker pool, recording a trace
//	ticktock stopwatch 01:30 --environment pool --pool-size 8 --event-log run.tlog
//
//	# Summarize the trace
//	ticktock log stats run.tlog
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ticktock-timers/ticktock-go/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
