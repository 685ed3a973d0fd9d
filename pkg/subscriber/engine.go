package subscriber

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
	"github.com/nakkulla/notification-dispatch/pkg/logging"
)

// Engine forwards every new notification to its delivery strategies
type Engine struct {
	source interfaces.ContentSource
	log    logging.Logger

	mu         sync.Mutex
	strategies []interfaces.Strategy
	lastErr    error
}

// NewEngine creates a delivery engine reading from source
func NewEngine(source interfaces.ContentSource, log logging.Logger) *Engine {
	return &Engine{
		source: source,
		log:    log,
	}
}

// AddStrategy appends a delivery strategy. Strategies run in the order added.
func (e *Engine) AddStrategy(s interfaces.Strategy) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.strategies = append(e.strategies, s)
}

// Strategies returns the registered strategy names in order
func (e *Engine) Strategies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Update implements the Subscriber interface.
// Content is read once and handed to every strategy. A failing strategy does
// not stop the remaining ones; the joined failures are kept in LastError.
func (e *Engine) Update() {
	content := e.source.CurrentContent()

	e.mu.Lock()
	strategies := make([]interfaces.Strategy, len(e.strategies))
	copy(strategies, e.strategies)
	e.mu.Unlock()

	var errs []error
	for _, s := range strategies {
		if err := s.Send(content); err != nil {
			e.log.Warn().Err(err).Str("channel", s.Name()).Msg("delivery failed")
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		e.log.Debug().Str("channel", s.Name()).Msg("notification delivered")
	}

	e.mu.Lock()
	e.lastErr = errors.Join(errs...)
	e.mu.Unlock()
}

// LastError returns the delivery failures of the most recent update, if any
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Close releases strategies that hold resources and forgets all strategies
func (e *Engine) Close() error {
	e.mu.Lock()
	strategies := e.strategies
	e.strategies = nil
	e.mu.Unlock()

	var errs []error
	for _, s := range strategies {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", s.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
