package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/core"
)

func main() {
	count := flag.Int("count", 10000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark profile after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notes_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Write the slot directly: a whole profile in one save.
	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()
	storage, err := notes.Init(ctx, benchDir, notes.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	generated := make([]core.Note, *count)
	for i := range generated {
		generated[i] = core.Note{
			ID:    int64(i + 1),
			Title: fmt.Sprintf("Note %d", i),
			Body:  "This is a benchmark note.",
			Tags:  []string{"benchmark", fmt.Sprintf("group-%d", i%50)},
		}
	}
	if err := storage.Save(ctx, generated); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	startOpen := time.Now()
	store, err := notes.Open(ctx, benchDir, notes.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	openTime := time.Since(startOpen)

	startSearch := time.Now()
	found := store.Search("GROUP-4")
	searchTime := time.Since(startSearch)

	startTags := time.Now()
	tags := store.UniqueTags()
	tagsTime := time.Since(startTags)

	// Every mutation rewrites the whole slot.
	startAdd := time.Now()
	if _, err := store.Add(ctx, "One more", "appended", "benchmark"); err != nil {
		panic(err)
	}
	addTime := time.Since(startAdd)
	_ = store.Close()

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Open:       %v\n", openTime)
	fmt.Printf("  Search:     %v (Items: %d)\n", searchTime, len(found))
	fmt.Printf("  UniqueTags: %v (Tags: %d)\n", tagsTime, len(tags))
	fmt.Printf("  Add:        %v\n", addTime)
	fmt.Printf("--------------------------------------------------\n")
}
