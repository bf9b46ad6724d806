package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/collegecupid/cupid-cli/internal/client/cli"
	"github.com/collegecupid/cupid-cli/internal/client/config"
	"github.com/collegecupid/cupid-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing app: %s\n", err.Error())
		os.Exit(1)
	}

	app.Run(ctx)
}
