// Package notes is the entry point for embedding the notes store.
//
// It connects the pure note domain (pkg/core) with a storage adapter
// (pkg/adapters/fs by default) through functional options.
//
// A store keeps an ordered list of notes with a title, a body and free text
// tags. Every change rewrites a single persistent slot ("notes") holding the
// whole list as JSON. Deleting is two-phase: a note is first marked pending
// (so a view can fade it out) and removed after a short delay.
//
// Usage:
//
//	store, err := notes.Open(ctx, notes.DefaultDir(),
//		notes.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	n, err := store.Add(ctx, "Shopping", "Buy milk", "home, errands")
//	hits := store.Search("err")
package notes
