// apps/go-solver/main.go
//
// Entry point for the Motus solver.
//
// Commands:
//   serve  run the board HTTP server
//   play   solve one board (in process, or on the board server with --remote)
//   bench  solve many in-process boards and print outcome totals
//
// Startup:
//   - Load `.env` (godotenv), then the environment (internal/config).
//   - Set the zerolog level from LOG_LEVEL.
//   - Open the configured store (sqlite | file | memory).

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/motus/apps/go-solver/internal/config"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	root := &cobra.Command{
		Use:           "motus",
		Short:         "Motus board server and constraint solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(&cfg), playCmd(&cfg), benchCmd(&cfg))

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("motus")
	}
}

// consoleLogs switches to human-readable logs for interactive commands.
func consoleLogs() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

func openStore(cfg *config.Config) (store.Store, error) {
	st, err := store.Open(cfg.Store, cfg.DBPath, cfg.StoreDir)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("store", cfg.Store).Msg("store opened")
	return st, nil
}
