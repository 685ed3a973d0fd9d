package delivery

import (
	"fmt"
	"io"
	"os"
)

// EmailStrategy "sends" notifications by printing them as an email
type EmailStrategy struct {
	address string
	out     io.Writer
}

// NewEmailStrategy creates a new email strategy writing to stdout
func NewEmailStrategy(address string) *EmailStrategy {
	return &EmailStrategy{address: address, out: os.Stdout}
}

// WithOutput redirects the strategy's output
func (e *EmailStrategy) WithOutput(w io.Writer) *EmailStrategy {
	e.out = w
	return e
}

// Name implements the Strategy interface
func (e *EmailStrategy) Name() string {
	return "email"
}

// Send implements the Strategy interface
func (e *EmailStrategy) Send(content string) error {
	if _, err := fmt.Fprintf(e.out, "Sending Email to: %s\n%s\n", e.address, content); err != nil {
		return fmt.Errorf("failed to write email to %s: %w", e.address, err)
	}
	return nil
}

// SMSStrategy "sends" notifications by printing them as a text message
type SMSStrategy struct {
	number string
	out    io.Writer
}

// NewSMSStrategy creates a new SMS strategy writing to stdout
func NewSMSStrategy(number string) *SMSStrategy {
	return &SMSStrategy{number: number, out: os.Stdout}
}

// WithOutput redirects the strategy's output
func (s *SMSStrategy) WithOutput(w io.Writer) *SMSStrategy {
	s.out = w
	return s
}

// Name implements the Strategy interface
func (s *SMSStrategy) Name() string {
	return "sms"
}

// Send implements the Strategy interface
func (s *SMSStrategy) Send(content string) error {
	if _, err := fmt.Fprintf(s.out, "Sending SMS to: %s\n%s\n", s.number, content); err != nil {
		return fmt.Errorf("failed to write sms to %s: %w", s.number, err)
	}
	return nil
}

// PopupStrategy shows notifications as a popup on the console
type PopupStrategy struct {
	out io.Writer
}

// NewPopupStrategy creates a new popup strategy writing to stdout
func NewPopupStrategy() *PopupStrategy {
	return &PopupStrategy{out: os.Stdout}
}

// WithOutput redirects the strategy's output
func (p *PopupStrategy) WithOutput(w io.Writer) *PopupStrategy {
	p.out = w
	return p
}

// Name implements the Strategy interface
func (p *PopupStrategy) Name() string {
	return "popup"
}

// Send implements the Strategy interface
func (p *PopupStrategy) Send(content string) error {
	if _, err := fmt.Fprintf(p.out, "Popup Notification:\n%s\n", content); err != nil {
		return fmt.Errorf("failed to write popup: %w", err)
	}
	return nil
}
