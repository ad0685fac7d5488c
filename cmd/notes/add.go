package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var title, body, tags string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Example: `  notes add --title Shopping --body "Buy milk" --tags "home, errands"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Add(cmd.Context(), title, body, tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note added: %d\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title (required)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Note body (required)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	return cmd
}
