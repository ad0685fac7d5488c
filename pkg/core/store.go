package core

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultDeleteDelay is how long a note stays pending-delete before removal.
const DefaultDeleteDelay = 500 * time.Millisecond

// Config holds the configuration for a Store.
type Config struct {
	Logger      *slog.Logger
	IDs         IDSource
	DeleteDelay time.Duration // Zero means DefaultDeleteDelay; negative removes on the next tick.
	Observer    func(Event)   // Called after each change, outside the store lock.
}

// Store owns the authoritative, ordered list of notes.
// Every mutation writes the full list back to the Storage. Storage failures
// are logged and never returned; only validation and not-found errors reach
// the caller.
type Store struct {
	mu      sync.Mutex
	storage Storage
	config  Config

	notes   []Note
	pending map[int64]*time.Timer
	closed  bool
	wg      sync.WaitGroup

	lastPersist    *time.Time
	lastPersistErr error
}

// Open creates a Store over storage and loads the persisted notes.
// A missing or corrupt slot yields an empty store.
func Open(ctx context.Context, storage Storage, config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.IDs == nil {
		config.IDs = NewClockIDs(nil)
	}
	if config.DeleteDelay == 0 {
		config.DeleteDelay = DefaultDeleteDelay
	}
	if config.DeleteDelay < 0 {
		config.DeleteDelay = 0
	}

	s := &Store{
		storage: storage,
		config:  config,
		pending: make(map[int64]*time.Timer),
	}
	s.notes = s.load(ctx)
	return s
}

// load reads the slot. Failures are logged and produce an empty list.
func (s *Store) load(ctx context.Context) []Note {
	notes, err := s.storage.Load(ctx)
	if err != nil {
		s.config.Logger.Error("failed to load notes", "error", err)
		return []Note{}
	}
	if notes == nil {
		notes = []Note{}
	}

	obs, canObserve := s.config.IDs.(interface{ Observe(int64) })
	for i := range notes {
		notes[i] = normalize(notes[i])
		if canObserve {
			obs.Observe(notes[i].ID)
		}
	}
	s.config.Logger.Debug("notes loaded", "count", len(notes))
	return notes
}

// persist writes the full list. Must be called with s.mu held.
func (s *Store) persist(ctx context.Context) {
	snapshot := make([]Note, len(s.notes))
	for i, n := range s.notes {
		snapshot[i] = n.clone()
	}

	now := time.Now()
	s.lastPersist = &now
	if err := s.storage.Save(ctx, snapshot); err != nil {
		s.lastPersistErr = err
		s.config.Logger.Error("failed to save notes", "error", err)
		return
	}
	s.lastPersistErr = nil
}

func (s *Store) emit(t EventType, id int64) {
	if s.config.Observer == nil {
		return
	}
	s.config.Observer(Event{Type: t, ID: id, Timestamp: time.Now().Unix()})
}

// Add validates and appends a new note, then persists.
func (s *Store) Add(ctx context.Context, title, body, tagsText string) (Note, error) {
	if err := Validate(title, body); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	id := s.config.IDs.Next()
	for indexOf(s.notes, id) >= 0 {
		id = s.config.IDs.Next()
	}
	n := Note{
		ID:    id,
		Title: title,
		Body:  body,
		Tags:  ParseTags(tagsText),
	}
	s.notes = append(s.notes, n)
	s.persist(ctx)
	s.mu.Unlock()

	s.config.Logger.Debug("note added", "id", id)
	s.emit(EventCreate, id)
	return n.clone(), nil
}

// Update replaces title, body and tags of the note with the given id,
// keeping its id and position, then persists.
func (s *Store) Update(ctx context.Context, id int64, title, body, tagsText string) (Note, error) {
	if err := Validate(title, body); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	i := indexOf(s.notes, id)
	if i < 0 {
		s.mu.Unlock()
		return Note{}, ErrNotFound
	}
	s.notes[i].Title = title
	s.notes[i].Body = body
	s.notes[i].Tags = ParseTags(tagsText)
	n := s.notes[i].clone()
	s.persist(ctx)
	s.mu.Unlock()

	s.config.Logger.Debug("note updated", "id", id)
	s.emit(EventModify, id)
	return n, nil
}

// Remove marks the note pending-delete and schedules its removal after the
// configured delay. Each note gets its own timer, so removals of different
// notes never interfere. Removing a note that is already pending is a no-op.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if indexOf(s.notes, id) < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	if _, ok := s.pending[id]; ok {
		s.mu.Unlock()
		return nil
	}

	// The deferred write must outlive the caller's context.
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	s.pending[id] = time.AfterFunc(s.config.DeleteDelay, func() {
		defer s.wg.Done()
		s.finishRemove(bg, id)
	})
	s.mu.Unlock()

	s.config.Logger.Debug("note pending delete", "id", id, "delay", s.config.DeleteDelay)
	s.emit(EventPending, id)
	return nil
}

func (s *Store) finishRemove(ctx context.Context, id int64) {
	s.mu.Lock()
	delete(s.pending, id)
	i := indexOf(s.notes, id)
	if i < 0 {
		// Gone already, e.g. after a reload.
		s.mu.Unlock()
		return
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	s.persist(ctx)
	s.mu.Unlock()

	s.config.Logger.Debug("note deleted", "id", id)
	s.emit(EventDelete, id)
}

// Reload replaces the in-memory list with the current slot content.
// Pending removals stay scheduled.
func (s *Store) Reload(ctx context.Context) {
	s.mu.Lock()
	s.notes = s.load(ctx)
	s.mu.Unlock()

	s.emit(EventReload, 0)
}

// Wait blocks until every scheduled removal has run.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close rejects further removals and waits for the scheduled ones.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

// Notes returns a copy of the current list, pending notes included.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() []Note {
	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.clone()
	}
	return out
}

// Len returns the number of notes, pending notes included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Get returns the note with the given id.
func (s *Store) Get(id int64) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.notes, id)
	if i < 0 {
		return Note{}, ErrNotFound
	}
	return s.notes[i].clone(), nil
}

// IsPending reports whether the note is waiting for its deferred removal.
func (s *Store) IsPending(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// Search returns notes whose title or any tag contains query (case-insensitive).
func (s *Store) Search(query string) []Note {
	return Search(s.Notes(), query)
}

// UniqueTags returns the distinct tags across all notes in first-seen order.
func (s *Store) UniqueTags() []string {
	return UniqueTags(s.Notes())
}

// FilterByTag returns notes with a tag matching the glob pattern.
func (s *Store) FilterByTag(pattern string) ([]Note, error) {
	return FilterByTag(s.Notes(), pattern)
}
