package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ticktock-timers/ticktock-go/internal/config"
	"github.com/ticktock-timers/ticktock-go/internal/logging"
	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
	"github.com/ticktock-timers/ticktock-go/pkg/timer"
)

// runtime bundles everything a timer command needs and releases it in Close.
type runtime struct {
	cfg     config.Config
	logger  *logrus.Logger
	spawner spawn.Spawner
	events  *log.FileLogger
	manager *timer.Manager
}

// resolveConfig loads the config file, if any, and applies flags that were
// set explicitly on the command line.
func (o *RootOptions) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("environment") {
		cfg.Environment = o.Environment
	}
	if flags.Changed("pool-size") {
		cfg.PoolSize = o.PoolSize
	}
	if flags.Changed("event-log") {
		cfg.EventLog = o.EventLog
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newRuntime builds the logger, spawner, event trace and manager.
// Operational logs go to logOut.
func (o *RootOptions) newRuntime(cmd *cobra.Command, logOut io.Writer) (*runtime, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New("ticktock", logOut, level)

	spawner, err := spawn.Select(cfg.Mode(), cfg.PoolSize, logger)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logger, spawner: spawner}

	var trace log.Logger = log.NewLogrusAdapter(logger)
	if level < logrus.DebugLevel {
		// Per-tick events would be filtered by the level anyway.
		trace = log.Only(trace, log.CategoryState, log.CategoryError)
	}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			spawner.Close()
			return nil, fmt.Errorf("failed to open event log: %w", err)
		}
		rt.events = fl
		trace = log.NewMultiLogger(fl, trace)
	}

	rt.manager = timer.NewManager(timer.Config{
		Spawner:     spawner,
		IDGenerator: timer.UUIDGenerator{},
		InboxSize:   cfg.InboxSize,
		MailboxSize: cfg.MailboxSize,
		EventLogger: trace,
		Logger:      logger,
	})

	logger.WithFields(logrus.Fields{
		"environment": spawner.Name(),
		"pool_size":   cfg.PoolSize,
		"event_log":   cfg.EventLog,
	}).Debug("runtime ready")
	return rt, nil
}

// Close stops every timer and releases the environment and trace file.
func (r *runtime) Close() error {
	r.manager.Close()
	r.spawner.Close()
	if r.events != nil {
		if dropped := r.events.Dropped(); dropped > 0 {
			r.logger.WithField("dropped", dropped).Warn("some timer events could not be recorded")
		}
		return r.events.Close()
	}
	return nil
}
