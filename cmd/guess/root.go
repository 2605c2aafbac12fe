package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/whanyu1212/go-basics/internal/config"
	"github.com/whanyu1212/go-basics/internal/console"
	"github.com/whanyu1212/go-basics/internal/daily"
	"github.com/whanyu1212/go-basics/internal/game"
	"github.com/whanyu1212/go-basics/internal/history"
)

type playOptions struct {
	daily  bool
	player string
	db     string
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		opts     = playOptions{db: cfg.HistoryDB}
		logLevel = cfg.LogLevel
	)

	root := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number between 1 and 100",
		Long: `Guess the number: type a number and get "Too small!" or "Too big!"
until you hit the secret. Type 'quit' to give up.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.SetupLogging(cmd.ErrOrStderr(), logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfg, opts)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (trace|debug|info|warn|error)")
	root.PersistentFlags().StringVar(&opts.db, "db", opts.db, "SQLite file recording finished games (env HISTORY_DB)")
	root.Flags().BoolVar(&opts.daily, "daily", false, "play today's secret instead of a random one")
	root.Flags().StringVar(&opts.player, "player", "", "player name recorded with the result")

	root.AddCommand(newServeCmd(cfg, &opts.db), newStatsCmd(&opts.db))
	return root
}

// runPlay runs one terminal game and records it when a database is configured.
func runPlay(cmd *cobra.Command, cfg config.Config, opts playOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var hist *history.DB
	if opts.db != "" {
		var err error
		if hist, err = history.OpenAndMigrate(ctx, opts.db); err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer hist.Close()
	}

	g := game.New(0)
	if opts.daily {
		now := time.Now()
		if hist != nil && opts.player != "" {
			played, err := hist.DailyAlreadyPlayed(ctx, opts.player, daily.DateKey(now))
			if err != nil {
				return fmt.Errorf("check daily: %w", err)
			}
			if played {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already played today's game. Come back tomorrow!\n", opts.player)
				return nil
			}
		}
		g = game.NewDaily(daily.Secret(now, cfg.DailySalt), opts.player)
	}
	g.Player = opts.player
	log.Debug().Str("game", g.ID).Str("mode", string(g.Mode)).Msg("new game")

	if err := console.Play(cmd.InOrStdin(), cmd.OutOrStdout(), g); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	if hist != nil {
		if err := hist.Record(ctx, history.FromGame(g)); err != nil {
			log.Warn().Err(err).Str("game", g.ID).Msg("record game")
		}
	}
	return nil
}
