package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Long: `Delete marks the note pending and removes it once the delete delay
has passed. The command returns after the removal has been written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			if err := store.Remove(cmd.Context(), id); err != nil {
				_ = store.Close()
				return fmt.Errorf("note %d: %w", id, err)
			}
			if err := store.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
			return nil
		},
	}
}
