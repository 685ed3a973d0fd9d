// Package service provides the notification service that owns the observable
// holder. Callers construct a Service and pass it to whatever needs to send or
// observe notifications; Default exists for code that wants a process-wide
// instance instead.
package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nakkulla/notification-dispatch/pkg/logging"
	"github.com/nakkulla/notification-dispatch/pkg/notification"
	"github.com/nakkulla/notification-dispatch/pkg/observable"
)

// Service sends notifications through its holder
type Service struct {
	holder *observable.Holder
	log    logging.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the diagnostic logger
func WithLogger(log logging.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New creates a service with a fresh holder
func New(opts ...Option) *Service {
	s := &Service{
		holder: observable.NewHolder(),
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observable returns the holder subscribers register with
func (s *Service) Observable() *observable.Holder {
	return s.holder
}

// SendNotification makes n the current notification and notifies every
// subscriber before returning. It returns the delivery id used in the logs.
func (s *Service) SendNotification(n notification.Notification) string {
	id := uuid.NewString()
	s.log.Debug().
		Str("delivery_id", id).
		Strs("layers", notification.Unwrap(n)).
		Int("subscribers", s.holder.Len()).
		Msg("sending notification")

	s.holder.SetNotification(n)

	s.log.Debug().Str("delivery_id", id).Msg("notification sent")
	return id
}

var (
	defaultOnce    sync.Once
	defaultService *Service
)

// Default returns the process-wide service, creating it on first use
func Default() *Service {
	defaultOnce.Do(func() {
		defaultService = New()
	})
	return defaultService
}
