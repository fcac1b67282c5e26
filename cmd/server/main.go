// Command server runs the wordsnap HTTP API.
//
// A .env file in the working directory is loaded first, if present; real
// environment variables take precedence over it.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordsnap-backend/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Error("load .env", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
