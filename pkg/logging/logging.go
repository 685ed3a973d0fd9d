// Package logging configures diagnostic logging on top of zerolog.
//
// Diagnostics go to stderr so they never interleave with the notification
// output written to stdout.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

// Logger is the logger type shared by all packages
type Logger = zerolog.Logger

func init() {
	zerolog.ErrorFieldName = "err"
}

// New creates a console logger writing to w at the given level.
// Colour is only enabled when w is a terminal.
func New(w io.Writer, level string) Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(cw).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Default creates a stderr logger at the given level
func Default(level string) Logger {
	return New(os.Stderr, level)
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, falling back to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether level is a name ParseLevel understands
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
