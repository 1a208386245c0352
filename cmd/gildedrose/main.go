package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/liolin/gildedrose-refactoring-kata/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := app.Run(ctx, os.Args[1:], os.Stdout, nil)
	stop()
	if err != nil {
		app.NewLogger(os.Stderr, false).Error("simulation stopped with error", "error", err)
		os.Exit(1)
	}
}
