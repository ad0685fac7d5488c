package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes            int        `json:"notes"`
	Pending          []int64    `json:"pending,omitempty"`
	StorageType      string     `json:"storage_type"`
	DeleteDelay      string     `json:"delete_delay"`
	Closed           bool       `json:"closed"`
	LastPersist      *time.Time `json:"last_persist,omitempty"`
	LastPersistError string     `json:"last_persist_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	storageType := "unknown"
	if s.storage != nil {
		storageType = "storage"
		if comp, ok := s.storage.(introspection.Component); ok {
			storageType = comp.ComponentType()
		}
	}

	pending := make([]int64, 0, len(s.pending))
	for _, n := range s.notes {
		if _, ok := s.pending[n.ID]; ok {
			pending = append(pending, n.ID)
		}
	}

	state := StoreState{
		Notes:       len(s.notes),
		Pending:     pending,
		StorageType: storageType,
		DeleteDelay: s.config.DeleteDelay.String(),
		Closed:      s.closed,
		LastPersist: s.lastPersist,
	}
	if s.lastPersistErr != nil {
		state.LastPersistError = s.lastPersistErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
