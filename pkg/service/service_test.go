package service

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nakkulla/notification-dispatch/pkg/delivery"
	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
	"github.com/nakkulla/notification-dispatch/pkg/logging"
	"github.com/nakkulla/notification-dispatch/pkg/notification"
	"github.com/nakkulla/notification-dispatch/pkg/subscriber"
)

var _ interfaces.Sender = (*Service)(nil)

// recordingStrategy keeps what it was sent alongside a shared call order
type recordingStrategy struct {
	name  string
	order *[]string
	sent  []string
}

func (r *recordingStrategy) Name() string { return r.name }

func (r *recordingStrategy) Send(content string) error {
	*r.order = append(*r.order, r.name)
	r.sent = append(r.sent, content)
	return nil
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("expected Default to return the same instance")
	}
	if Default().Observable() == nil {
		t.Error("expected default service to have a holder")
	}
}

func TestNewIsIndependent(t *testing.T) {
	a, b := New(), New()
	if a.Observable() == b.Observable() {
		t.Error("expected separate holders for separate services")
	}
}

func TestSendNotificationShippingScenario(t *testing.T) {
	var logBuf bytes.Buffer
	svc := New(WithLogger(logging.New(&logBuf, "debug")))

	var out bytes.Buffer
	logger := subscriber.NewLogger(svc.Observable(), logging.Nop())
	logger.SetOutput(&out)
	svc.Observable().AddSubscriber(logger)

	engine := subscriber.NewEngine(svc.Observable(), logging.Nop())
	var order []string
	email := &recordingStrategy{name: "email", order: &order}
	sms := &recordingStrategy{name: "sms", order: &order}
	popup := &recordingStrategy{name: "popup", order: &order}
	engine.AddStrategy(email)
	engine.AddStrategy(sms)
	engine.AddStrategy(popup)
	svc.Observable().AddSubscriber(engine)

	n, err := notification.NewBuilder("Your order has been shipped").
		WithTimestamp().
		WithSignature("Amazon").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := svc.SendNotification(n)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected uuid delivery id, got %q", id)
	}

	composed := "[2025-04-13 14:22:00] Your order has been shipped\n-- Amazon\n"
	if out.String() != "Logging Notification:\n"+composed+"\n" {
		t.Errorf("unexpected logger output %q", out.String())
	}
	if !reflect.DeepEqual(order, []string{"email", "sms", "popup"}) {
		t.Errorf("unexpected strategy order %v", order)
	}
	for _, s := range []*recordingStrategy{email, sms, popup} {
		if !reflect.DeepEqual(s.sent, []string{composed}) {
			t.Errorf("%s: unexpected deliveries %q", s.name, s.sent)
		}
	}
	if !strings.Contains(logBuf.String(), id) {
		t.Errorf("expected delivery id in diagnostics, got %q", logBuf.String())
	}
}

func TestSendNotificationConsoleOutput(t *testing.T) {
	svc := New()
	var out bytes.Buffer

	logger := subscriber.NewLogger(svc.Observable(), logging.Nop())
	logger.SetOutput(&out)
	svc.Observable().AddSubscriber(logger)

	engine := subscriber.NewEngine(svc.Observable(), logging.Nop())
	engine.AddStrategy(delivery.NewEmailStrategy("nehasaniya@gmail.com").WithOutput(&out))
	engine.AddStrategy(delivery.NewSMSStrategy("192783816832").WithOutput(&out))
	engine.AddStrategy(delivery.NewPopupStrategy().WithOutput(&out))
	svc.Observable().AddSubscriber(engine)

	n, err := notification.NewBuilder("Your order has been shipped").WithTimestamp().WithSignature("Amazon").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.SendNotification(n)

	composed := "[2025-04-13 14:22:00] Your order has been shipped\n-- Amazon\n"
	expected := "Logging Notification:\n" + composed + "\n" +
		"Sending Email to: nehasaniya@gmail.com\n" + composed + "\n" +
		"Sending SMS to: 192783816832\n" + composed + "\n" +
		"Popup Notification:\n" + composed + "\n"
	if out.String() != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, out.String())
	}
}
