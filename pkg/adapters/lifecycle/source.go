// Package lifecycle turns external changes to the notes slot into a
// lifecycle.Source that keeps a store in sync.
package lifecycle

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notes/pkg/core"
)

// Reloader is the part of a store a slot source refreshes.
// *core.Store satisfies it.
type Reloader interface {
	Reload(ctx context.Context)
	Len() int
}

// SlotChange is emitted once the store has been reloaded after a slot change.
type SlotChange struct {
	core.Event
	// Notes is the number of notes in the store after the reload.
	Notes int
}

func (c SlotChange) String() string {
	return fmt.Sprintf("%s: %d notes", c.Event, c.Notes)
}

type slotSource struct {
	store   Reloader
	changes <-chan core.Event
	types   []core.EventType
	out     chan lifecycle.Event
}

// NewSource reloads store on every slot change whose type is in types (any
// type when none are given) and emits a SlotChange for it.
func NewSource(store Reloader, changes <-chan core.Event, types ...core.EventType) lifecycle.Source {
	return &slotSource{
		store:   store,
		changes: changes,
		types:   types,
		out:     make(chan lifecycle.Event),
	}
}

func (s *slotSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *slotSource) accepts(t core.EventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Start runs until changes closes or ctx is done, then closes Events.
func (s *slotSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var e core.Event
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-s.changes:
				if !ok {
					return nil
				}
				e = ev
			}
			if !s.accepts(e.Type) {
				continue
			}

			s.store.Reload(ctx)
			change := SlotChange{Event: e, Notes: s.store.Len()}
			select {
			case s.out <- change:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}
