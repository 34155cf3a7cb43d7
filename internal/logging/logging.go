// Package logging builds the operational loggers used across ticktock.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ownerFormatter prefixes every message with the owning component.
type ownerFormatter struct {
	owner string
	inner logrus.Formatter
}

// Format satisfies logrus.Formatter.
func (f *ownerFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Message = fmt.Sprintf("[%s] %s", f.owner, e.Message)
	return f.inner.Format(e)
}

// NewLogger returns a logger writing "[owner] message" lines to stderr at
// info level.
func NewLogger(owner string) *logrus.Logger {
	return New(owner, os.Stderr, logrus.InfoLevel)
}

// New returns a logger for owner writing to w at level. Colors are only
// forced when w is a terminal.
func New(owner string, w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&ownerFormatter{
		owner: owner,
		inner: &logrus.TextFormatter{
			ForceColors:     isTerminal(w),
			DisableColors:   !isTerminal(w),
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	return logger
}

// ParseLevel parses a level name, accepting the empty string as info.
func ParseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
