package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/motus/apps/go-solver/internal/board"
	"github.com/robalobadob/motus/apps/go-solver/internal/config"
	"github.com/robalobadob/motus/apps/go-solver/internal/game"
	"github.com/robalobadob/motus/apps/go-solver/internal/render"
	"github.com/robalobadob/motus/apps/go-solver/internal/session"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

func benchCmd(cfg *config.Config) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve many in-process boards and report outcome totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			consoleLogs()
			if n <= 0 {
				return fmt.Errorf("--n must be positive")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return bench(ctx, cfg, n)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 100, "number of boards")
	cmd.Flags().IntVar(&cfg.WordLength, "length", cfg.WordLength, "word length")
	cmd.Flags().IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "rows per board")
	cmd.Flags().BoolVar(&cfg.RevealFirst, "reveal-first", cfg.RevealFirst, "show the first letter")
	return cmd
}

func bench(ctx context.Context, cfg *config.Config, n int) error {
	dict, err := words.Default()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	// Per-session logs would fight with the bar.
	prev := zerolog.GlobalLevel()
	if prev < zerolog.WarnLevel {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	defer zerolog.SetGlobalLevel(prev)

	tally := store.NewMemory()
	opts := board.Options{KeyDelay: -1, PollInterval: time.Millisecond}
	bar := progressbar.Default(int64(n))
	for i := 0; i < n; i++ {
		answer := dict.RandomAnswer(cfg.WordLength)
		if answer == "" {
			return fmt.Errorf("no %d-letter words in the dictionary", cfg.WordLength)
		}
		g := game.New(dict, answer, game.Options{MaxAttempts: cfg.MaxAttempts, RevealFirst: cfg.RevealFirst})
		res, err := session.New(cfg.Session(), board.NewLocal(g, opts), cfg.Source(), st).Run(ctx)
		if err != nil {
			return err
		}
		rec := res.Record()
		_ = tally.RecordSession(ctx, rec)
		if err := st.RecordSession(ctx, rec); err != nil {
			log.Warn().Err(err).Msg("record session")
		}
		_ = bar.Add(1)
	}

	sum, err := tally.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Print(render.Summary(sum))
	return nil
}
