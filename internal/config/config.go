// Package config loads the ticktock YAML configuration file.
//
// Example:
//
//	environment: pool
//	pool_size: 64
//	mailbox_size: 16
//	inbox_size: 256
//	log_level: debug
//	event_log: /tmp/ticktock.tlog
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ticktock-timers/ticktock-go/internal/logging"
	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
	"github.com/ticktock-timers/ticktock-go/pkg/timer"
	"github.com/ticktock-timers/ticktock-go/pkg/worker"
)

// Config holds runtime settings. Zero values mean "use the default".
type Config struct {
	// Environment is the spawn mode: auto, goroutine or pool.
	Environment string `yaml:"environment"`

	// PoolSize bounds live timers in pool mode. In auto mode a positive
	// size selects the pool.
	PoolSize int `yaml:"pool_size"`

	// MailboxSize is each worker's command buffer.
	MailboxSize int `yaml:"mailbox_size"`

	// InboxSize is the manager's response buffer.
	InboxSize int `yaml:"inbox_size"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`

	// EventLog is the path of a .tlog trace file. Empty disables tracing.
	EventLog string `yaml:"event_log"`
}

// LoadError describes a configuration file that could not be used.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	prefix := e.File
	if prefix == "" {
		prefix = "config"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return prefix + ": " + e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Environment: string(spawn.ModeAuto),
		MailboxSize: worker.DefaultMailboxSize,
		InboxSize:   timer.DefaultInboxSize,
		LogLevel:    "info",
	}
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return Config{}, le
		}
		return Config{}, &LoadError{File: path, Message: err.Error()}
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	mode, err := spawn.ParseMode(c.Environment)
	if err != nil {
		return &LoadError{Message: fmt.Sprintf("unknown environment %q", c.Environment), Cause: err}
	}
	if c.PoolSize < 0 {
		return &LoadError{Message: fmt.Sprintf("pool_size must not be negative, got %d", c.PoolSize)}
	}
	if mode == spawn.ModePool && c.PoolSize == 0 {
		return &LoadError{Message: "pool_size is required for the pool environment"}
	}
	if c.MailboxSize < 0 {
		return &LoadError{Message: fmt.Sprintf("mailbox_size must not be negative, got %d", c.MailboxSize)}
	}
	if c.InboxSize < 0 {
		return &LoadError{Message: fmt.Sprintf("inbox_size must not be negative, got %d", c.InboxSize)}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return &LoadError{Message: "invalid log_level", Cause: err}
	}
	return nil
}

// Mode returns the parsed environment. Call Validate first.
func (c *Config) Mode() spawn.Mode {
	mode, _ := spawn.ParseMode(c.Environment)
	return mode
}
