// Package fs stores the notes slot as a JSON file inside a profile directory.
package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// Repository implements core.Storage using a single file per slot key.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string        // Profile directory.
	Key          string        // Slot key, stored as <Key>.json. Defaults to core.DefaultSlotKey.
	MustExist    bool          // Fail Initialize instead of creating Path.
	ReadOnly     bool          // Reject Save with core.ErrReadOnly.
	Logger       *slog.Logger  // Defaults to a discard logger.
	ErrorHandler func(error)   // Receives watcher errors in addition to the log.
	Debounce     time.Duration // Coalescing window for watch events. Defaults to 50ms.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Key == "" {
		config.Key = core.DefaultSlotKey
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Filename returns the absolute location of the slot file.
func (r *Repository) Filename() string {
	return filepath.Join(r.Path, r.config.Key+".json")
}

// Initialize ensures the profile directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("profile path does not exist: %s", r.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat profile path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("profile path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	return nil
}

// Load reads and decodes the slot file. A missing file yields no notes.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(r.Filename())
	if os.IsNotExist(err) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Filename(), err)
	}

	notes, err := core.DecodeNotes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Filename(), err)
	}

	r.touch(&r.lastLoad)
	return notes, nil
}

// Save overwrites the slot file atomically.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := core.EncodeNotes(notes)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := writeFileAtomic(r.Filename(), data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.config.Logger.Debug("slot written", "path", r.Filename(), "notes", len(notes))
	r.touch(&r.lastSave)
	return nil
}

func (r *Repository) touch(field **time.Time) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	*field = &now
}

var (
	_ core.Storage     = (*Repository)(nil)
	_ core.Initializer = (*Repository)(nil)
	_ core.Watchable   = (*Repository)(nil)
)
