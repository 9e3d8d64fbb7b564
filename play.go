package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/motus/apps/go-solver/internal/board"
	"github.com/robalobadob/motus/apps/go-solver/internal/config"
	"github.com/robalobadob/motus/apps/go-solver/internal/game"
	"github.com/robalobadob/motus/apps/go-solver/internal/render"
	"github.com/robalobadob/motus/apps/go-solver/internal/session"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

type playFlags struct {
	remote bool
	answer string
	mode   string
	plain  bool
}

func playCmd(cfg *config.Config) *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve one board and print the transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			consoleLogs()
			render.Plain = f.plain
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return play(ctx, cfg, f)
		},
	}
	cmd.Flags().BoolVar(&f.remote, "remote", false, "play on the board server at BOARD_URL")
	cmd.Flags().StringVar(&f.answer, "answer", "", "fixed answer (default: random)")
	cmd.Flags().StringVar(&f.mode, "mode", "random", "answer selection on the server: random | daily")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "no colours")
	cmd.Flags().IntVar(&cfg.WordLength, "length", cfg.WordLength, "word length")
	cmd.Flags().IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "rows per board")
	cmd.Flags().BoolVar(&cfg.RevealFirst, "reveal-first", cfg.RevealFirst, "show the first letter")
	cmd.Flags().StringVar(&cfg.BoardURL, "board-url", cfg.BoardURL, "board server URL")
	return cmd
}

func play(ctx context.Context, cfg *config.Config, f playFlags) error {
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	b, err := newBoard(ctx, cfg, f)
	if err != nil {
		return err
	}

	res, err := session.New(cfg.Session(), b, cfg.Source(), st).Run(ctx)
	if err != nil {
		return err
	}
	if err := st.RecordSession(ctx, res.Record()); err != nil {
		log.Warn().Err(err).Msg("record session")
	}
	fmt.Print(render.Transcript(res))
	return nil
}

// newBoard starts a game on the server, or builds one in process.
func newBoard(ctx context.Context, cfg *config.Config, f playFlags) (session.Board, error) {
	if f.remote {
		reveal := cfg.RevealFirst
		r := board.NewRemote(cfg.BoardURL, nil, cfg.Board())
		started, err := r.Start(ctx, board.NewGameRequest{
			Length:      cfg.WordLength,
			MaxAttempts: cfg.MaxAttempts,
			Mode:        f.mode,
			Answer:      f.answer,
			RevealFirst: &reveal,
		})
		if err != nil {
			return nil, fmt.Errorf("start remote game: %w", err)
		}
		log.Info().Str("gameId", started.GameID).Str("board", cfg.BoardURL).Msg("remote game started")
		return r, nil
	}

	dict, err := words.Default()
	if err != nil {
		return nil, err
	}
	answer := f.answer
	if answer == "" {
		answer = dict.RandomAnswer(cfg.WordLength)
	} else if n, ok := words.Normalize(answer); ok {
		answer = n
	} else {
		return nil, fmt.Errorf("answer %q is not a plain word", f.answer)
	}
	if answer == "" {
		return nil, fmt.Errorf("no %d-letter words in the dictionary", cfg.WordLength)
	}
	g := game.New(dict, answer, game.Options{MaxAttempts: cfg.MaxAttempts, RevealFirst: cfg.RevealFirst})
	log.Info().Str("gameId", g.ID).Int("length", g.Length).Msg("local game started")
	return board.NewLocal(g, cfg.Board()), nil
}
