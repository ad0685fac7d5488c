package notes

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// Store is a public alias for the note store.
type Store = core.Store

// Event is a public alias for store and slot change events.
type Event = core.Event

// EditSession is a public alias for the single-note edit draft.
type EditSession = core.EditSession

// Errors re-exported for errors.Is checks.
var (
	ErrValidation = core.ErrValidation
	ErrNotFound   = core.ErrNotFound
	ErrReadOnly   = core.ErrReadOnly
)

// --- Configuration ---

// Option defines a functional option for configuring a store.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage port.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithDeleteDelay sets how long a note stays pending before removal.
func WithDeleteDelay(d time.Duration) Option {
	return platform.WithDeleteDelay(d)
}

// WithObserver registers a callback for store events.
func WithObserver(fn func(core.Event)) Option {
	return platform.WithObserver(fn)
}

// WithIDSource overrides the time based id source.
func WithIDSource(ids core.IDSource) Option {
	return platform.WithIDSource(ids)
}

// WithSlotKey renames the persistent slot.
func WithSlotKey(key string) Option {
	return platform.WithSlotKey(key)
}

// WithReadOnly never writes the slot back.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the profile directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithWatchErrorHandler receives errors raised while watching the slot.
func WithWatchErrorHandler(fn func(error)) Option {
	return platform.WithWatchErrorHandler(fn)
}

// --- Factory ---

// Open loads a store from the profile directory dir.
func Open(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	return platform.Open(ctx, dir, opts...)
}

// Init prepares and returns the storage for dir without loading a store.
func Init(ctx context.Context, dir string, opts ...Option) (core.Storage, error) {
	return platform.Init(ctx, dir, opts...)
}

// --- Utils ---

// ResolveDir picks the profile directory for an explicit path (may be
// empty) and the current working directory.
func ResolveDir(explicit, cwd string) (string, error) {
	return platform.ResolveDir(explicit, cwd)
}

// DefaultDir resolves the profile directory from the current working
// directory, ignoring errors by falling back to ".notes".
func DefaultDir() string {
	cwd, _ := os.Getwd()
	dir, err := platform.ResolveDir("", cwd)
	if err != nil {
		return platform.ProfileDirName
	}
	return dir
}
