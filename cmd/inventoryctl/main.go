// Command inventoryctl is the command-line client of the inventory service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/bakery-inventory/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
