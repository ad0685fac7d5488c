package platform

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("FS Adapter Creates Profile", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "profile")
		store, err := Open(ctx, dir, WithDeleteDelay(time.Millisecond))
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Add(ctx, "a", "b", "c")
		require.NoError(t, err)

		reopened, err := Open(ctx, dir)
		require.NoError(t, err)
		defer reopened.Close()
		assert.Equal(t, 1, reopened.Len())
		assert.Equal(t, "fs", reopened.State().(core.StoreState).StorageType)
	})

	t.Run("Must Exist", func(t *testing.T) {
		_, err := Open(ctx, filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
		assert.Error(t, err)
	})

	t.Run("FS Requires Dir", func(t *testing.T) {
		_, err := Open(ctx, "")
		assert.Error(t, err)
	})

	t.Run("Memory Adapter", func(t *testing.T) {
		store, err := Open(ctx, "", WithAdapter("memory"))
		require.NoError(t, err)
		defer store.Close()
		assert.Equal(t, "memory", store.State().(core.StoreState).StorageType)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := Open(ctx, t.TempDir(), WithAdapter("s3"))
		assert.Error(t, err)
	})

	t.Run("Injected Storage And Observer", func(t *testing.T) {
		repo := memory.NewRepository("")
		var events []core.EventType
		store, err := Open(ctx, "",
			WithStorage(repo),
			WithObserver(func(e core.Event) { events = append(events, e.Type) }),
		)
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Add(ctx, "a", "b", "")
		require.NoError(t, err)
		assert.Equal(t, 1, repo.Saves())
		assert.Equal(t, []core.EventType{core.EventCreate}, events)
	})

	t.Run("Read Only Keeps File Untouched", func(t *testing.T) {
		dir := t.TempDir()
		seed := fs.NewRepository(fs.Config{Path: dir})
		require.NoError(t, seed.Save(ctx, []core.Note{{ID: 1, Title: "a", Body: "b", Tags: []string{}}}))

		store, err := Open(ctx, dir, WithReadOnly(true))
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Add(ctx, "c", "d", "")
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())

		notes, err := seed.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("Slot Key", func(t *testing.T) {
		dir := t.TempDir()
		store, err := Open(ctx, dir, WithSlotKey("scratch"))
		require.NoError(t, err)
		defer store.Close()
		_, err = store.Add(ctx, "a", "b", "")
		require.NoError(t, err)

		scratch := fs.NewRepository(fs.Config{Path: dir, Key: "scratch"})
		notes, err := scratch.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
}
