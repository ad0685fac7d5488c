package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Slot Loads Empty", func(t *testing.T) {
		repo := memory.NewRepository("")
		notes, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Save Then Load", func(t *testing.T) {
		repo := memory.NewRepository("")
		in := []core.Note{{ID: 1, Title: "a", Body: "b", Tags: []string{"x"}}}
		require.NoError(t, repo.Save(ctx, in))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		blob, ok := repo.Blob(core.DefaultSlotKey)
		require.True(t, ok)
		assert.JSONEq(t, `[{"id":1,"title":"a","body":"b","tags":["x"]}]`, string(blob))
		assert.Equal(t, 1, repo.Saves())
	})

	t.Run("Corrupt Blob Fails Load", func(t *testing.T) {
		repo := memory.NewRepository("custom")
		repo.SetBlob("custom", []byte("{not json"))
		_, err := repo.Load(ctx)
		assert.Error(t, err)
	})

	t.Run("Injected Save Error", func(t *testing.T) {
		repo := memory.NewRepository("")
		repo.SaveErr = memory.ErrInjected
		err := repo.Save(ctx, nil)
		assert.ErrorIs(t, err, memory.ErrInjected)
		_, ok := repo.Blob(core.DefaultSlotKey)
		assert.False(t, ok)
	})
}
