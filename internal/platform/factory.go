package platform

import (
	"context"

	"github.com/aretw0/notes/pkg/core"
)

// Open prepares the storage for dir and loads a Store over it.
//
//	store, err := platform.Open(ctx, "~/.config/notes", platform.WithDeleteDelay(time.Second))
func Open(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage, err := initStorage(ctx, dir, o)
	if err != nil {
		return nil, err
	}

	store := core.Open(ctx, storage, core.Config{
		Logger:      o.logger,
		IDs:         o.ids,
		DeleteDelay: o.deleteDelay,
		Observer:    o.observer,
	})
	return store, nil
}
