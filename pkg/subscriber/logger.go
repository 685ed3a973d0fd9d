// Package subscriber contains the observers that react to a new notification.
package subscriber

import (
	"fmt"
	"io"
	"os"

	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
	"github.com/nakkulla/notification-dispatch/pkg/logging"
)

// Logger records every new notification to its output
type Logger struct {
	source interfaces.ContentSource
	out    io.Writer
	log    logging.Logger
}

// NewLogger creates a logger subscriber reading from source and writing to stdout
func NewLogger(source interfaces.ContentSource, log logging.Logger) *Logger {
	return &Logger{
		source: source,
		out:    os.Stdout,
		log:    log,
	}
}

// SetOutput redirects the recorded notifications
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Update implements the Subscriber interface
func (l *Logger) Update() {
	content := l.source.CurrentContent()
	if _, err := fmt.Fprintf(l.out, "Logging Notification:\n%s\n", content); err != nil {
		l.log.Warn().Err(err).Msg("failed to record notification")
		return
	}
	l.log.Debug().Int("bytes", len(content)).Msg("notification recorded")
}
