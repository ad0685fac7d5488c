package core_test

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

// =============================================================================
// Generators
// =============================================================================

func titleGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 ]{0,20}`)
}

func tagsTextGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z ,]{0,30}`)
}

func queryGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z]{0,3}`)
}

func openRapidStore(t *rapid.T) (*core.Store, *memory.Repository) {
	repo := memory.NewRepository("")
	store := core.Open(context.Background(), repo, core.Config{})
	return store, repo
}

// =============================================================================
// Property: size equals the number of successful adds
// =============================================================================

func TestProperty_AddCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store, repo := openRapidStore(t)
		ctx := context.Background()

		n := rapid.IntRange(0, 15).Draw(t, "n")
		ok := 0
		for i := 0; i < n; i++ {
			title := titleGenerator().Draw(t, "title")
			body := titleGenerator().Draw(t, "body")
			before := repo.Saves()

			_, err := store.Add(ctx, title, body, tagsTextGenerator().Draw(t, "tags"))
			if err == nil {
				ok++
				continue
			}
			// Rejected adds never persist.
			if repo.Saves() != before {
				t.Fatalf("rejected add persisted")
			}
			if strings.TrimSpace(title) != "" && strings.TrimSpace(body) != "" {
				t.Fatalf("valid add rejected: %v", err)
			}
		}
		if store.Len() != ok {
			t.Fatalf("expected %d notes, got %d", ok, store.Len())
		}
	})
}

// =============================================================================
// Property: search is a case-insensitive title-or-tag filter
// =============================================================================

func TestProperty_Search(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store, _ := openRapidStore(t)
		ctx := context.Background()

		for i := rapid.IntRange(0, 8).Draw(t, "n"); i > 0; i-- {
			_, _ = store.Add(ctx, "t"+titleGenerator().Draw(t, "title"), "body", tagsTextGenerator().Draw(t, "tags"))
		}

		if got := len(store.Search("")); got != store.Len() {
			t.Fatalf("empty query returned %d of %d", got, store.Len())
		}

		q := queryGenerator().Draw(t, "query")
		lower := store.Search(strings.ToLower(q))
		upper := store.Search(strings.ToUpper(q))
		if len(lower) != len(upper) {
			t.Fatalf("search is case sensitive for %q", q)
		}

		hits := map[int64]bool{}
		for _, n := range lower {
			hits[n.ID] = true
		}
		for _, n := range store.Notes() {
			want := strings.Contains(strings.ToLower(n.Title), strings.ToLower(q))
			for _, tag := range n.Tags {
				want = want || strings.Contains(strings.ToLower(tag), strings.ToLower(q))
			}
			if hits[n.ID] != want {
				t.Fatalf("note %d: match=%v want=%v for %q", n.ID, hits[n.ID], want, q)
			}
		}
	})
}

// =============================================================================
// Property: update preserves id and position
// =============================================================================

func TestProperty_UpdatePreservesPosition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store, _ := openRapidStore(t)
		ctx := context.Background()

		count := rapid.IntRange(1, 8).Draw(t, "count")
		for i := 0; i < count; i++ {
			_, _ = store.Add(ctx, "title", "body", "")
		}
		before := ids(store.Notes())
		pos := rapid.IntRange(0, count-1).Draw(t, "pos")
		title := "x" + titleGenerator().Draw(t, "title")
		tagsText := tagsTextGenerator().Draw(t, "tags")

		if _, err := store.Update(ctx, before[pos], title, "new body", tagsText); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		notes := store.Notes()
		after := ids(notes)
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("order changed at %d", i)
			}
		}
		if notes[pos].Title != title || notes[pos].Body != "new body" {
			t.Fatalf("fields not updated: %+v", notes[pos])
		}
		if core.FormatTags(notes[pos].Tags) != core.FormatTags(core.ParseTags(tagsText)) {
			t.Fatalf("tags not updated: %q", notes[pos].Tags)
		}
	})
}

// =============================================================================
// Property: persist(load()) is idempotent
// =============================================================================

func TestProperty_SerializationIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store, repo := openRapidStore(t)
		ctx := context.Background()
		for i := rapid.IntRange(1, 6).Draw(t, "n"); i > 0; i-- {
			_, _ = store.Add(ctx, "t", "b", tagsTextGenerator().Draw(t, "tags"))
		}

		first, _ := repo.Blob(core.DefaultSlotKey)
		for round := 0; round < 2; round++ {
			notes, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if err := repo.Save(ctx, notes); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			blob, _ := repo.Blob(core.DefaultSlotKey)
			if string(blob) != string(first) {
				t.Fatalf("round %d changed serialization:\n%s\n%s", round, first, blob)
			}
		}
	})
}
