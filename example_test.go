package notes_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/notes"
)

// Example_basic demonstrates opening a profile, adding notes and searching.
func Example_basic() {
	dir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	store, err := notes.Open(ctx, dir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if _, err := store.Add(ctx, "Shopping", "Buy milk", "home, errands"); err != nil {
		log.Fatal(err)
	}
	if _, err := store.Add(ctx, "Standup", "Yesterday / today", "work"); err != nil {
		log.Fatal(err)
	}

	for _, n := range store.Search("ERR") {
		fmt.Println(n.Title, n.Tags)
	}
	fmt.Println(store.UniqueTags())

	// Output:
	// Shopping [home errands]
	// [home errands work]
}

// Example_delete shows the two-phase removal.
func Example_delete() {
	ctx := context.Background()
	store, err := notes.Open(ctx, "", notes.WithAdapter("memory"), notes.WithDeleteDelay(100*time.Millisecond))
	if err != nil {
		log.Fatal(err)
	}

	n, _ := store.Add(ctx, "Draft", "to be removed", "")
	_ = store.Remove(ctx, n.ID)
	fmt.Println("pending:", store.IsPending(n.ID), "count:", store.Len())

	store.Wait()
	fmt.Println("pending:", store.IsPending(n.ID), "count:", store.Len())
	_ = store.Close()

	// Output:
	// pending: true count: 1
	// pending: false count: 0
}

// Example_validation shows the blocking validation error.
func Example_validation() {
	ctx := context.Background()
	store, _ := notes.Open(ctx, "", notes.WithAdapter("memory"))
	defer store.Close()

	_, err := store.Add(ctx, "  ", "body", "")
	fmt.Println(err)

	// Output:
	// title and body are required
}
