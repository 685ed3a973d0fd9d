package notification

import (
	"errors"
	"reflect"
)

// ErrNilNotification is returned when a decorator is built around nothing.
var ErrNilNotification = errors.New("inner notification is nil")

// Notification is anything that can produce the text of a notification
type Notification interface {
	Content() string
}

// Simple is a plain notification holding raw text
type Simple struct {
	text string
}

// NewSimple creates a new simple notification
func NewSimple(text string) *Simple {
	return &Simple{text: text}
}

// Content implements the Notification interface
func (s *Simple) Content() string {
	return s.text
}

// IsNil reports whether n is nil or a nil pointer stored in the interface.
// Such values cannot produce content.
func IsNil(n Notification) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Unwrap lists the layers of n from the outermost wrapper to the base
// notification, e.g. ["signature", "timestamp", "simple"].
func Unwrap(n Notification) []string {
	var layers []string
	for !IsNil(n) {
		switch v := n.(type) {
		case *TimestampDecorator:
			layers = append(layers, "timestamp")
			n = v.inner
		case *SignatureDecorator:
			layers = append(layers, "signature")
			n = v.inner
		case *Simple:
			layers = append(layers, "simple")
			n = nil
		default:
			layers = append(layers, "custom")
			n = nil
		}
	}
	return layers
}
