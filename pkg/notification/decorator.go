package notification

import (
	"fmt"
	"time"
)

// FixedTimestamp is the timestamp stamped onto notifications when no clock is configured
const FixedTimestamp = "2025-04-13 14:22:00"

// TimestampLayout is the layout used to format clock readings
const TimestampLayout = "2006-01-02 15:04:05"

// TimestampDecorator wraps another notification and prefixes a timestamp to its content
type TimestampDecorator struct {
	inner Notification
	clock func() time.Time
}

// TimestampOption configures a TimestampDecorator
type TimestampOption func(*TimestampDecorator)

// WithClock stamps the time returned by clock instead of FixedTimestamp.
func WithClock(clock func() time.Time) TimestampOption {
	return func(td *TimestampDecorator) {
		td.clock = clock
	}
}

// NewTimestampDecorator creates a new timestamp decorator
func NewTimestampDecorator(inner Notification, opts ...TimestampOption) (*TimestampDecorator, error) {
	if IsNil(inner) {
		return nil, fmt.Errorf("timestamp decorator: %w", ErrNilNotification)
	}

	td := &TimestampDecorator{inner: inner}
	for _, opt := range opts {
		opt(td)
	}
	return td, nil
}

// Content implements the Notification interface
func (td *TimestampDecorator) Content() string {
	return "[" + td.timestamp() + "] " + td.inner.Content()
}

func (td *TimestampDecorator) timestamp() string {
	if td.clock == nil {
		return FixedTimestamp
	}
	return td.clock().Format(TimestampLayout)
}

// SignatureDecorator wraps another notification and appends a signature block
type SignatureDecorator struct {
	inner     Notification
	signature string
}

// NewSignatureDecorator creates a new signature decorator
func NewSignatureDecorator(inner Notification, signature string) (*SignatureDecorator, error) {
	if IsNil(inner) {
		return nil, fmt.Errorf("signature decorator: %w", ErrNilNotification)
	}

	return &SignatureDecorator{
		inner:     inner,
		signature: signature,
	}, nil
}

// Content implements the Notification interface
func (sd *SignatureDecorator) Content() string {
	return sd.inner.Content() + "\n-- " + sd.signature + "\n"
}
