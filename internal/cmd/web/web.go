// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/aeterna-porta/internal/platform/cmd"
	"github.com/louisbranch/aeterna-porta/internal/platform/logging"
	"github.com/louisbranch/aeterna-porta/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AssetBaseURL string `env:"WEB_ASSET_BASE_URL"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for static assets (empty serves them locally)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
