// Package main starts the AETERNA-PORTA web service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/aeterna-porta/internal/cmd/web"
	"github.com/louisbranch/aeterna-porta/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError("parse flags", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ExitOnError("serve web", webcmd.Run(ctx, cfg))
}
