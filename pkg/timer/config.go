package timer

import (
	"github.com/sirupsen/logrus"

	"github.com/ticktock-timers/ticktock-go/pkg/clock"
	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
	"github.com/ticktock-timers/ticktock-go/pkg/worker"
)

// DefaultInboxSize is the response buffer shared by all workers.
const DefaultInboxSize = 256

// Config configures a Manager.
type Config struct {
	// Spawner runs workers. CreateTimer fails with
	// *UnsupportedEnvironmentError when nil.
	Spawner spawn.Spawner

	// Clock is handed to every worker. Defaults to clock.Real().
	Clock clock.Clock

	// IDGenerator creates timer ids. Defaults to UUIDGenerator.
	IDGenerator IDGenerator

	// InboxSize is the capacity of the response inbox.
	InboxSize int

	// MailboxSize is the command buffer of each worker.
	MailboxSize int

	// EventLogger receives the timer event trace. Defaults to log.NoopLogger.
	EventLogger log.Logger

	// Logger receives operational output. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a configuration that runs every worker on its own
// goroutine.
func DefaultConfig() Config {
	return Config{
		Spawner:     spawn.NewGoroutine(),
		Clock:       clock.Real(),
		IDGenerator: UUIDGenerator{},
		InboxSize:   DefaultInboxSize,
		MailboxSize: worker.DefaultMailboxSize,
	}
}
