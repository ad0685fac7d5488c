package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/export"
)

func newExportCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every note as JSON, YAML or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			store, _, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if output == "" || output == "-" {
				return export.Write(cmd.OutOrStdout(), f, store.Notes())
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := export.Write(file, f, store.Notes()); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			a.logger.Info("notes exported", "path", output, "count", store.Len())
			return nil
		},
	}

	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "Output format: "+strings.Join(names, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
