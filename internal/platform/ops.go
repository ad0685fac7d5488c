package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

// Init builds and initializes the storage for a profile directory.
// The dir argument is adapter-specific and ignored by "memory".
func Init(ctx context.Context, dir string, opts ...Option) (core.Storage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStorage(ctx, dir, o)
}

func initStorage(ctx context.Context, dir string, o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}

	var storage core.Storage
	switch o.adapter {
	case "fs":
		if dir == "" {
			return nil, fmt.Errorf("fs adapter requires a profile directory")
		}
		storage = fs.NewRepository(fs.Config{
			Path:         dir,
			Key:          o.slotKey,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			ErrorHandler: o.onWatchErr,
		})
	case "memory":
		storage = memory.NewRepository(o.slotKey)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if init, ok := storage.(core.Initializer); ok {
		if err := init.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	return storage, nil
}
