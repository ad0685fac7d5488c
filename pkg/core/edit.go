package core

import (
	"context"
	"errors"
)

// ErrNoEdit is returned when saving without an active edit session.
var ErrNoEdit = errors.New("no note is being edited")

// EditSession tracks the single note being edited and its draft fields.
// The zero value is an inactive session.
type EditSession struct {
	id     int64
	active bool

	Title string
	Body  string
	Tags  string
}

// Start seeds the drafts from n, replacing any session in progress.
func (e *EditSession) Start(n Note) {
	e.id = n.ID
	e.active = true
	e.Title = n.Title
	e.Body = n.Body
	e.Tags = FormatTags(n.Tags)
}

// Active reports whether a note is being edited.
func (e *EditSession) Active() bool {
	return e.active
}

// EditingID returns the id under edit.
func (e *EditSession) EditingID() (int64, bool) {
	return e.id, e.active
}

// Save commits the drafts through Store.Update and clears the session.
// On error the session is kept so the user can correct the drafts.
func (e *EditSession) Save(ctx context.Context, s *Store) (Note, error) {
	if !e.active {
		return Note{}, ErrNoEdit
	}
	n, err := s.Update(ctx, e.id, e.Title, e.Body, e.Tags)
	if err != nil {
		return Note{}, err
	}
	e.Discard()
	return n, nil
}

// Discard clears the session without touching the store.
func (e *EditSession) Discard() {
	*e = EditSession{}
}
