package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// options holds the internal configuration for a notes store.
type options struct {
	storage     core.Storage
	adapter     string
	logger      *slog.Logger
	ids         core.IDSource
	observer    func(core.Event)
	deleteDelay time.Duration
	slotKey     string
	readOnly    bool
	mustExist   bool
	onWatchErr  func(error)
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		slotKey: core.DefaultSlotKey,
	}
}

// WithStorage injects a custom storage port (e.g. a mock).
// If provided, the adapter selection is skipped.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDSource overrides the time based id source.
func WithIDSource(ids core.IDSource) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithObserver registers a callback for store events.
func WithObserver(fn func(core.Event)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithDeleteDelay sets how long a note stays pending before removal.
// Zero means core.DefaultDeleteDelay.
func WithDeleteDelay(d time.Duration) Option {
	return func(o *options) {
		o.deleteDelay = d
	}
}

// WithSlotKey renames the persistent slot. Defaults to "notes".
func WithSlotKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.slotKey = key
		}
	}
}

// WithReadOnly opens the slot without ever writing it back.
// Mutations still apply in memory; their writes fail and are logged.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the profile directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithWatchErrorHandler receives errors raised while watching the slot.
func WithWatchErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onWatchErr = fn
	}
}
