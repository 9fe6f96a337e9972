// Package logging builds the hclog loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when neither a flag nor the environment sets a level.
const DefaultLevel = "warn"

// Options configures NewLogger.
type Options struct {
	// Name is the logger name shown on every line.
	Name string
	// Level is an hclog level name (trace, debug, info, warn, error, off).
	Level string
	// JSON switches the output to one JSON object per line.
	JSON bool
	// Output receives log lines; defaults to os.Stderr.
	Output io.Writer
}

// NewLogger creates a new hclog logger with standard settings.
// Timestamps are UTC so log lines from different machines line up.
func NewLogger(opts Options) hclog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.LevelFromString(DefaultLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		JSONFormat: opts.JSON,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// OrNull returns l, or a logger that discards everything when l is nil.
func OrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}
	return l
}
