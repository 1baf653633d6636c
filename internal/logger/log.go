// Package logger provides the diagnostic logger and crash reporting for todolist.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/josephgoksu/todolist/internal/util"
)

// Options configures New.
type Options struct {
	Level     string
	Format    string
	Verbose   bool
	Timestamp bool
}

var (
	sessionOnce sync.Once
	sessionID   string
)

// SessionID returns the identifier of this process run. It is stable for the
// lifetime of the process and shows up in logs, crash reports and exports.
func SessionID() string {
	sessionOnce.Do(func() {
		sessionID = uuid.NewString()
	})
	return sessionID
}

// ParseLevel maps a config level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter maps a config format name to a log.Formatter, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New creates a logger writing to w. Verbose forces debug level.
func New(w io.Writer, opts Options) *log.Logger {
	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.Timestamp,
		Prefix:          "todolist",
	})
	return l.With("session", util.ShortID(SessionID(), 0))
}

// NewStderr creates a logger writing to stderr.
func NewStderr(opts Options) *log.Logger {
	return New(os.Stderr, opts)
}

// Discard returns a logger that drops everything; used where no logger was supplied.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
