// Package main runs the aeterna command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/aeterna-porta/internal/cmd/aeterna"
	"github.com/louisbranch/aeterna-porta/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := aeterna.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	config.ExitOnError("aeterna", err)
}
