// Package logging builds the logrus loggers shared by the CLI and the HTTP
// server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rpgo/projector/internal/calculation"
	"github.com/sirupsen/logrus"
)

// Options configures New.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// logrus entries already satisfy the engine's logger contract.
var (
	_ calculation.Logger = (*logrus.Logger)(nil)
	_ calculation.Logger = (*logrus.Entry)(nil)
)

// New returns a logger writing to stderr unless Output is set. Unknown
// levels fall back to info.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}
	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetLevel(ParseLevel(opts.Level))
	return logger
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ForRequest tags every line of one computation with its request ID and
// projection kind.
func ForRequest(l logrus.FieldLogger, requestID, kind string) *logrus.Entry {
	fields := logrus.Fields{"request_id": requestID}
	if kind != "" {
		fields["kind"] = kind
	}
	return l.WithFields(fields)
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *logrus.Logger {
	return New(Options{Level: "panic", Output: io.Discard})
}
