// Package aeterna implements the aeterna command-line tool: static export,
// terminal preview and manifest output of the AETERNA-PORTA page.
package aeterna

import (
	"context"
	"fmt"
	"io"

	"github.com/louisbranch/aeterna-porta/internal/platform/branding"
	entrypoint "github.com/louisbranch/aeterna-porta/internal/platform/cmd"
	platformi18n "github.com/louisbranch/aeterna-porta/internal/platform/i18n"
	"github.com/louisbranch/aeterna-porta/internal/platform/logging"
	webi18n "github.com/louisbranch/aeterna-porta/internal/services/web/platform/i18n"
	"github.com/louisbranch/aeterna-porta/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

// Config holds options shared by every subcommand.
type Config struct {
	Lang     string `env:"CLI_LANG" envDefault:"en-US"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

type app struct {
	cfg    Config
	logger *zap.Logger
}

// Execute runs the CLI with args, writing command output to stdout.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCLI, func(ctx context.Context) error {
		cmd := newRootCmd(cfg)
		cmd.SetArgs(args)
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		return cmd.ExecuteContext(ctx)
	})
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "aeterna",
		Short:         branding.PageTitle() + " page tooling",
		Long:          branding.Experiment + ": export, preview and inspect the overview page without running the web service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := logging.New(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.cfg.Lang, "lang", cfg.Lang, "Language for page chrome (en-US or pt-BR)")
	cmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	cmd.AddCommand(
		a.exportCmd(),
		a.showCmd(),
		a.manifestCmd(),
		a.iconsCmd(),
		a.i18nCmd(),
	)
	return cmd
}

// page builds the page tree in the configured language.
func (a *app) page() (view.Page, *message.Printer, error) {
	tag, ok := platformi18n.ParseTag(a.cfg.Lang)
	if !ok {
		return view.Page{}, nil, fmt.Errorf("unsupported language %q", a.cfg.Lang)
	}
	loc := webi18n.Printer(tag)
	return view.BuildPage(loc, tag.String()), loc, nil
}
