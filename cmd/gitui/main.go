// Command gitui drives git working copies on behalf of a remote caller.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/act3-ai/gitui/cmd/gitui/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewCLI(version).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
