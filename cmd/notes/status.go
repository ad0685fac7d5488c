package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

// statusReport is the JSON document printed by the status command.
type statusReport struct {
	Dir     string         `json:"dir"`
	Store   any            `json:"store"`
	Storage map[string]any `json:"storage,omitempty"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the internal state of the store and its storage as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, storage, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			report := statusReport{Dir: a.cfg.Dir, Store: store.State()}
			if i, ok := storage.(introspection.Introspectable); ok {
				report.Storage = map[string]any{"state": i.State()}
				if c, ok := storage.(introspection.Component); ok {
					report.Storage["type"] = c.ComponentType()
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
