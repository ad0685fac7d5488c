package core

import "context"

// DefaultSlotKey is the key of the single slot holding the serialized notes.
const DefaultSlotKey = "notes"

// Storage defines the contract for the persistent slot behind a Store.
// Adhering to this interface keeps the store independent of the
// underlying mechanism (filesystem, memory, etc).
type Storage interface {
	// Load reads the persisted notes. A missing slot yields an empty list
	// and no error; unreadable or unparsable content yields an error.
	Load(ctx context.Context) ([]Note, error)

	// Save overwrites the slot with the full sequence.
	Save(ctx context.Context, notes []Note) error
}

// Initializer is implemented by storages that need setup before use
// (e.g. creating a directory).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by storages that can report changes made to the
// slot by other processes.
type Watchable interface {
	// Watch emits an event each time the slot changes. The channel is
	// closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
