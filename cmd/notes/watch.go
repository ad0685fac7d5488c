package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/adapters/lifecycle"
	"github.com/aretw0/notes/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print changes made to the notes slot until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, storage, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			w, ok := storage.(core.Watchable)
			if !ok {
				return errors.New("the selected storage cannot be watched")
			}
			changes, err := w.Watch(ctx)
			if err != nil {
				return err
			}

			src := lifecycle.NewSource(store, changes, core.EventModify, core.EventDelete)
			if err := src.Start(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for e := range src.Events() {
				fmt.Fprintln(out, e)
			}
			return nil
		},
	}
}
