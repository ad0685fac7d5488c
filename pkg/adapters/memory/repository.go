// Package memory provides an in-process key-value slot store, the analogue
// of a browser's local storage. Notes are kept as serialized blobs so the
// wire format is exercised exactly as it is on disk.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notes/pkg/core"
)

// Repository implements core.Storage over an in-memory map of blobs.
type Repository struct {
	mu    sync.RWMutex
	key   string
	blobs map[string][]byte
	saves int

	// SaveErr, when set, makes every Save fail with it.
	SaveErr error
}

// NewRepository creates an empty repository using the given slot key
// (core.DefaultSlotKey when empty).
func NewRepository(key string) *Repository {
	if key == "" {
		key = core.DefaultSlotKey
	}
	return &Repository{
		key:   key,
		blobs: make(map[string][]byte),
	}
}

// Load decodes the slot blob. A missing slot yields an empty list.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	r.mu.RLock()
	data, ok := r.blobs[r.key]
	r.mu.RUnlock()
	if !ok {
		return []core.Note{}, nil
	}
	return core.DecodeNotes(data)
}

// Save encodes notes and overwrites the slot blob.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	data, err := core.EncodeNotes(notes)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[r.key] = data
	r.saves++
	return nil
}

// Blob returns the raw content of a slot.
func (r *Repository) Blob(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.blobs[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// SetBlob overwrites a slot with raw content, bypassing the codec.
func (r *Repository) SetBlob(key string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[key] = append([]byte(nil), data...)
}

// Saves returns how many successful Save calls have happened.
func (r *Repository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// ErrInjected is a convenience error for tests that simulate write failures.
var ErrInjected = errors.New("injected storage failure")

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Key   string `json:"key"`
	Slots int    `json:"slots"`
	Saves int    `json:"saves"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RepositoryState{Key: r.key, Slots: len(r.blobs), Saves: r.saves}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "memory"
}

var _ core.Storage = (*Repository)(nil)
var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
