package delivery

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStrategies(t *testing.T) {
	tests := []struct {
		name     string
		build    func(w *bytes.Buffer) interfaces.Strategy
		channel  string
		expected string
	}{
		{
			name:     "email",
			build:    func(w *bytes.Buffer) interfaces.Strategy { return NewEmailStrategy("a@example.com").WithOutput(w) },
			channel:  "email",
			expected: "Sending Email to: a@example.com\nhello\n",
		},
		{
			name:     "sms",
			build:    func(w *bytes.Buffer) interfaces.Strategy { return NewSMSStrategy("12345").WithOutput(w) },
			channel:  "sms",
			expected: "Sending SMS to: 12345\nhello\n",
		},
		{
			name:     "popup",
			build:    func(w *bytes.Buffer) interfaces.Strategy { return NewPopupStrategy().WithOutput(w) },
			channel:  "popup",
			expected: "Popup Notification:\nhello\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := tt.build(&buf)

			if s.Name() != tt.channel {
				t.Errorf("expected name %q, got %q", tt.channel, s.Name())
			}
			if err := s.Send("hello"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestStrategyWriteFailure(t *testing.T) {
	strategies := []interfaces.Strategy{
		NewEmailStrategy("a@example.com").WithOutput(failingWriter{}),
		NewSMSStrategy("12345").WithOutput(failingWriter{}),
		NewPopupStrategy().WithOutput(failingWriter{}),
	}

	for _, s := range strategies {
		if err := s.Send("hello"); err == nil {
			t.Errorf("%s: expected error from failing writer", s.Name())
		}
	}
}
