package aeterna

import (
	"fmt"

	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
	"github.com/spf13/cobra"
)

func (a *app) iconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icon catalog as a Markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), icons.CatalogMarkdown())
			return err
		},
	}
}
