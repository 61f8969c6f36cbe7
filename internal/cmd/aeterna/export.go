package aeterna

import (
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/pagerender"
	webstatic "github.com/louisbranch/aeterna-porta/internal/services/web/static"
	webtemplates "github.com/louisbranch/aeterna-porta/internal/services/web/templates"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) exportCmd() *cobra.Command {
	var out string
	var assetBaseURL string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write the page as a standalone HTML document",
		Long:  "Write the page as a standalone HTML document. The stylesheet is inlined unless --asset-base-url points at a host serving /static/app.css.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, loc, err := a.page()
			if err != nil {
				return err
			}
			layout := webtemplates.LayoutOptions{
				Title: page.Title,
				Lang:  page.Lang,
				Loc:   loc,
			}
			if assetBaseURL != "" {
				layout.StylesheetURL = pagerender.StylesheetURL(assetBaseURL)
			} else {
				css, err := webstatic.FS.ReadFile("app.css")
				if err != nil {
					return fmt.Errorf("read stylesheet: %w", err)
				}
				layout.InlineCSS = string(css)
			}

			write := func(w io.Writer) error {
				return pagerender.WriteDocument(cmd.Context(), w, layout, webtemplates.LandingPage(page))
			}
			if out == "" || out == "-" {
				return write(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := writeAndClose(f, write); err != nil {
				return fmt.Errorf("export %s: %w", out, err)
			}
			a.logger.Info("exported page", zap.String("path", out), zap.String("lang", page.Lang))
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	c.Flags().StringVar(&assetBaseURL, "asset-base-url", "", "Link the stylesheet from this host instead of inlining it")
	return c
}

// writeAndClose runs write against wc and always closes it, reporting the
// close error when the write succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
