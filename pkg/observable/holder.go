// Package observable holds the current notification and fans changes out to
// registered subscribers.
//
// Subscribers are tracked in a registry of opaque handles. The holder never
// owns a subscriber; callers either keep the handle returned by AddSubscriber
// and Unsubscribe with it, or remove the subscriber by identity.
package observable

import (
	"slices"
	"sync"

	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
	"github.com/nakkulla/notification-dispatch/pkg/notification"
)

// Handle identifies a single subscriber registration
type Handle uint64

type registration struct {
	handle     Handle
	subscriber interfaces.Subscriber
}

// Holder owns the current notification and the subscriber registry
type Holder struct {
	mu            sync.Mutex
	current       notification.Notification
	registrations []registration
	nextHandle    Handle
}

// NewHolder creates an empty holder
func NewHolder() *Holder {
	return &Holder{}
}

// AddSubscriber registers s and returns the handle of the registration.
// Registering the same subscriber twice yields two registrations and two
// Update calls per change. A nil subscriber is ignored and gets handle 0.
func (h *Holder) AddSubscriber(s interfaces.Subscriber) Handle {
	if s == nil {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextHandle++
	h.registrations = append(h.registrations, registration{
		handle:     h.nextHandle,
		subscriber: s,
	})
	return h.nextHandle
}

// RemoveSubscriber removes every registration of s, compared by identity.
// Removing a subscriber that was never added is a no-op.
func (h *Holder) RemoveSubscriber(s interfaces.Subscriber) {
	if s == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.registrations = slices.DeleteFunc(h.registrations, func(r registration) bool {
		return sameSubscriber(r.subscriber, s)
	})
}

// Unsubscribe removes the registration identified by handle.
// It reports whether a registration was removed.
func (h *Holder) Unsubscribe(handle Handle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, r := range h.registrations {
		if r.handle == handle {
			h.registrations = slices.Delete(h.registrations, i, i+1)
			return true
		}
	}
	return false
}

// SetNotification replaces the current notification and notifies every
// subscriber before returning. A nil notification, including a typed nil
// pointer, clears the current one.
func (h *Holder) SetNotification(n notification.Notification) {
	if notification.IsNil(n) {
		n = nil
	}

	h.mu.Lock()
	h.current = n
	h.mu.Unlock()

	h.NotifyAll()
}

// NotifyAll calls Update on every registered subscriber in registration order.
// The registry is snapshotted first so subscribers may use the holder from
// inside Update.
func (h *Holder) NotifyAll() {
	h.mu.Lock()
	snapshot := make([]interfaces.Subscriber, 0, len(h.registrations))
	for _, r := range h.registrations {
		snapshot = append(snapshot, r.subscriber)
	}
	h.mu.Unlock()

	for _, s := range snapshot {
		s.Update()
	}
}

// CurrentContent returns the content of the current notification, or an
// empty string when none has been set.
func (h *Holder) CurrentContent() string {
	h.mu.Lock()
	current := h.current
	h.mu.Unlock()

	if current == nil {
		return ""
	}
	return current.Content()
}

// Len returns the number of registrations
func (h *Holder) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.registrations)
}

// sameSubscriber compares by identity without panicking on subscribers whose
// dynamic type is not comparable.
func sameSubscriber(a, b interfaces.Subscriber) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
