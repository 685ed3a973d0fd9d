package subscriber

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nakkulla/notification-dispatch/pkg/logging"
)

// staticSource implements ContentSource and counts reads
type staticSource struct {
	content string
	reads   int
}

func (s *staticSource) CurrentContent() string {
	s.reads++
	return s.content
}

// MockStrategy implements Strategy for testing
type MockStrategy struct {
	name    string
	order   *[]string
	sent    []string
	sendErr error
	closed  bool
}

func (m *MockStrategy) Name() string { return m.name }

func (m *MockStrategy) Send(content string) error {
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, content)
	return nil
}

func (m *MockStrategy) Close() error {
	m.closed = true
	return nil
}

func TestLoggerUpdate(t *testing.T) {
	source := &staticSource{content: "hello\n-- sig\n"}
	var buf bytes.Buffer
	l := NewLogger(source, logging.Nop())
	l.SetOutput(&buf)

	l.Update()

	expected := "Logging Notification:\nhello\n-- sig\n\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if source.reads != 1 {
		t.Errorf("expected one read, got %d", source.reads)
	}
}

func TestEngineUpdate(t *testing.T) {
	t.Run("all strategies receive identical content in order", func(t *testing.T) {
		source := &staticSource{content: "payload"}
		e := NewEngine(source, logging.Nop())

		var order []string
		email := &MockStrategy{name: "email", order: &order}
		sms := &MockStrategy{name: "sms", order: &order}
		popup := &MockStrategy{name: "popup", order: &order}
		e.AddStrategy(email)
		e.AddStrategy(sms)
		e.AddStrategy(popup)
		e.AddStrategy(nil)

		e.Update()

		if !reflect.DeepEqual(order, []string{"email", "sms", "popup"}) {
			t.Errorf("unexpected order %v", order)
		}
		for _, m := range []*MockStrategy{email, sms, popup} {
			if !reflect.DeepEqual(m.sent, []string{"payload"}) {
				t.Errorf("%s: unexpected deliveries %v", m.name, m.sent)
			}
		}
		if source.reads != 1 {
			t.Errorf("expected content to be read once, got %d", source.reads)
		}
		if e.LastError() != nil {
			t.Errorf("unexpected error: %v", e.LastError())
		}
		if !reflect.DeepEqual(e.Strategies(), []string{"email", "sms", "popup"}) {
			t.Errorf("unexpected strategies %v", e.Strategies())
		}
	})

	t.Run("failure does not stop remaining strategies", func(t *testing.T) {
		var logBuf bytes.Buffer
		e := NewEngine(&staticSource{content: "payload"}, logging.New(&logBuf, "warn"))

		boom := errors.New("boom")
		failing := &MockStrategy{name: "sms", sendErr: boom}
		after := &MockStrategy{name: "popup"}
		e.AddStrategy(failing)
		e.AddStrategy(after)

		e.Update()

		if len(after.sent) != 1 {
			t.Error("expected strategy after the failure to run")
		}
		if !errors.Is(e.LastError(), boom) {
			t.Errorf("expected LastError to wrap boom, got %v", e.LastError())
		}
		if !strings.Contains(logBuf.String(), "delivery failed") {
			t.Errorf("expected warning in log, got %q", logBuf.String())
		}

		// A clean round clears the previous failure
		failing.sendErr = nil
		e.Update()
		if e.LastError() != nil {
			t.Errorf("expected error to clear, got %v", e.LastError())
		}
	})
}

func TestEngineClose(t *testing.T) {
	e := NewEngine(&staticSource{}, logging.Nop())
	m := &MockStrategy{name: "email"}
	e.AddStrategy(m)

	if err := e.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.closed {
		t.Error("expected strategy to be closed")
	}
	if len(e.Strategies()) != 0 {
		t.Error("expected strategies to be released")
	}
}
