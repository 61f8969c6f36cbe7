package aeterna

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) manifestCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "manifest",
		Short: "Print the deployment manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := content.Manifest()
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(m); err != nil {
					return fmt.Errorf("encode manifest: %w", err)
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(m); err != nil {
					return fmt.Errorf("encode manifest: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "json", "Output format: json|yaml")
	return c
}
