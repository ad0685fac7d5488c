package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

func newEditCmd(a *app) *cobra.Command {
	var title, body, tags string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, body or tags of a note",
		Long:  `Edit replaces only the fields given as flags; the others keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Get(id)
			if err != nil {
				return fmt.Errorf("note %d: %w", id, err)
			}

			var session core.EditSession
			session.Start(n)
			if cmd.Flags().Changed("title") {
				session.Title = title
			}
			if cmd.Flags().Changed("body") {
				session.Body = body
			}
			if cmd.Flags().Changed("tags") {
				session.Tags = tags
			}

			if _, err := session.Save(cmd.Context(), store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "New body")
	cmd.Flags().StringVar(&tags, "tags", "", "New comma separated tags")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
