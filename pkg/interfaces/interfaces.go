// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "github.com/nakkulla/notification-dispatch/pkg/notification"

// Subscriber reacts to a change of the current notification.
// It receives no arguments and pulls state from the ContentSource it watches.
type Subscriber interface {
	Update()
}

// ContentSource exposes the content of the current notification.
type ContentSource interface {
	CurrentContent() string
}

// Sender accepts a fully decorated notification for dispatch and returns
// the id it was dispatched under.
type Sender interface {
	SendNotification(n notification.Notification) string
}

// Strategy delivers final notification content over one channel.
type Strategy interface {
	// Name identifies the channel in logs, e.g. "email"
	Name() string
	// Send performs the delivery side effect for content
	Send(content string) error
}
