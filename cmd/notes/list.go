package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
	"github.com/aretw0/notes/pkg/export"
)

func newListCmd(a *app) *cobra.Command {
	var (
		search   string
		tagGlob  string
		listJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Example: `  notes list --search err
  notes list --tag 'work/*' --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			found := store.Search(search)
			if tagGlob != "" {
				if found, err = core.FilterByTag(found, tagGlob); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if listJSON {
				return export.Write(out, export.FormatJSON, found)
			}
			for _, n := range found {
				line := fmt.Sprintf("%d - %s", n.ID, n.Title)
				if tags := strings.Join(n.Tags, ", "); tags != "" {
					line += " [" + tags + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only notes whose title or a tag contains this text")
	cmd.Flags().StringVar(&tagGlob, "tag", "", "Only notes with a tag matching this glob")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			for _, t := range store.UniqueTags() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
