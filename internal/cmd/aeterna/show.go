package aeterna

import (
	"github.com/louisbranch/aeterna-porta/internal/term"
	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	var width int

	c := &cobra.Command{
		Use:   "show",
		Short: "Preview the page in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _, err := a.page()
			if err != nil {
				return err
			}
			return term.Render(cmd.OutOrStdout(), page, term.Options{Width: width})
		},
	}
	c.Flags().IntVarP(&width, "width", "w", term.DefaultWidth, "Column budget for the preview")
	return c
}
