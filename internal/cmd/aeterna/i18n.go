package aeterna

import (
	"fmt"
	"strings"

	i18ncatalog "github.com/louisbranch/aeterna-porta/internal/platform/i18n/catalog"
	"github.com/spf13/cobra"
)

func (a *app) i18nCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "i18n",
		Short: "Report translation coverage of the page chrome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b strings.Builder
			b.WriteString("| Locale | Base Keys | Translated | Completion | Missing |\n")
			b.WriteString("| --- | ---: | ---: | ---: | --- |\n")
			for _, cov := range i18ncatalog.Default().Coverage() {
				missing := "-"
				if len(cov.Missing) > 0 {
					missing = "`" + strings.Join(cov.Missing, "`, `") + "`"
				}
				fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% | %s |\n", cov.Locale, cov.BaseKeys, cov.Translated, cov.Completion(), missing)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
