package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/motus/apps/go-solver/internal/config"
	"github.com/robalobadob/motus/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Motus board server",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := words.Default()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := httpserver.New(dict, st, cfg.Server())
			log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting board server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	return cmd
}
