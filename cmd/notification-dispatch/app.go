package main

import (
	"fmt"
	"io"
	"time"

	"github.com/nakkulla/notification-dispatch/pkg/config"
	"github.com/nakkulla/notification-dispatch/pkg/delivery"
	"github.com/nakkulla/notification-dispatch/pkg/interfaces"
	"github.com/nakkulla/notification-dispatch/pkg/logging"
	"github.com/nakkulla/notification-dispatch/pkg/notification"
	"github.com/nakkulla/notification-dispatch/pkg/service"
	"github.com/nakkulla/notification-dispatch/pkg/subscriber"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config  *config.Config
	Log     logging.Logger
	Service *service.Service
	Logger  *subscriber.Logger
	Engine  *subscriber.Engine
}

// NewDependencies creates all dependencies with the given configuration.
// Notification output goes to out, diagnostics to log.
func NewDependencies(cfg *config.Config, out io.Writer, log logging.Logger) (*Dependencies, error) {
	svc := service.New(service.WithLogger(log))
	holder := svc.Observable()

	deps := &Dependencies{
		Config:  cfg,
		Log:     log,
		Service: svc,
	}

	// Logger first so its block precedes the deliveries
	deps.Logger = subscriber.NewLogger(holder, log)
	deps.Logger.SetOutput(out)
	holder.AddSubscriber(deps.Logger)

	deps.Engine = subscriber.NewEngine(holder, log)
	if cfg.Email != "" {
		deps.Engine.AddStrategy(delivery.NewEmailStrategy(cfg.Email).WithOutput(out))
	}
	if cfg.Phone != "" {
		deps.Engine.AddStrategy(delivery.NewSMSStrategy(cfg.Phone).WithOutput(out))
	}
	if cfg.Popup {
		deps.Engine.AddStrategy(delivery.NewPopupStrategy().WithOutput(out))
	}
	holder.AddSubscriber(deps.Engine)

	log.Debug().Strs("channels", deps.Engine.Strategies()).Msg("delivery engine ready")

	return deps, nil
}

// Close unregisters the subscribers and releases the strategies
func (d *Dependencies) Close() {
	holder := d.Service.Observable()
	holder.RemoveSubscriber(d.Logger)
	holder.RemoveSubscriber(d.Engine)

	if err := d.Engine.Close(); err != nil {
		d.Log.Warn().Err(err).Msg("failed to release delivery strategies")
	}
}

// Application represents the main application
type Application struct {
	deps   *Dependencies
	sender interfaces.Sender
}

// NewApplication creates a new application that sends through the
// dependencies' service
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps:   deps,
		sender: deps.Service,
	}
}

// BuildNotification composes the configured message with its decorators
func (a *Application) BuildNotification() (notification.Notification, error) {
	cfg := a.deps.Config

	var tsOpts []notification.TimestampOption
	if cfg.LiveTimestamp {
		tsOpts = append(tsOpts, notification.WithClock(time.Now))
	}

	b := notification.NewBuilder(cfg.Message)
	if cfg.SignatureFirst {
		b = withSignature(b, cfg)
		b = withTimestamp(b, cfg, tsOpts)
	} else {
		b = withTimestamp(b, cfg, tsOpts)
		b = withSignature(b, cfg)
	}

	n, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build notification: %w", err)
	}
	return n, nil
}

func withTimestamp(b *notification.Builder, cfg *config.Config, opts []notification.TimestampOption) *notification.Builder {
	if !cfg.Timestamp {
		return b
	}
	return b.WithTimestamp(opts...)
}

func withSignature(b *notification.Builder, cfg *config.Config) *notification.Builder {
	if cfg.Signature == "" {
		return b
	}
	return b.WithSignature(cfg.Signature)
}

// Run builds the notification and sends it through the service
func (a *Application) Run() error {
	n, err := a.BuildNotification()
	if err != nil {
		return err
	}

	id := a.sender.SendNotification(n)

	if err := a.deps.Engine.LastError(); err != nil {
		return fmt.Errorf("delivery %s incomplete: %w", id, err)
	}
	return nil
}
