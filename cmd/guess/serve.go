package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/whanyu1212/go-basics/internal/config"
	"github.com/whanyu1212/go-basics/internal/history"
	"github.com/whanyu1212/go-basics/internal/httpserver"
	"github.com/whanyu1212/go-basics/internal/store"
)

func newServeCmd(cfg config.Config, db *string) *cobra.Command {
	port := cfg.Port
	redisAddr := cfg.RedisAddr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the guessing game over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, closeStore, err := openStore(ctx, redisAddr, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			var hist *history.DB
			if *db != "" {
				if hist, err = history.OpenAndMigrate(ctx, *db); err != nil {
					return fmt.Errorf("open history: %w", err)
				}
				defer hist.Close()
			}

			srv := httpserver.New(st, httpserver.Options{
				History:   hist,
				JWTSecret: cfg.JWTSecret,
				TokenTTL:  cfg.TokenTTL,
				DailySalt: cfg.DailySalt,
			})
			log.Info().Str("port", port).Bool("redis", redisAddr != "").Bool("history", hist != nil).Msg("starting guess server")
			return srv.Start(ctx, ":"+port)
		},
	}

	cmd.Flags().StringVar(&port, "port", port, "HTTP port (env PORT)")
	cmd.Flags().StringVar(&redisAddr, "redis", redisAddr, "Redis address for game sessions; empty keeps them in memory (env REDIS_ADDR)")
	return cmd
}

// openStore picks the Redis backend when addr is set, memory otherwise.
func openStore(ctx context.Context, addr string, cfg config.Config) (store.Store, func(), error) {
	if addr == "" {
		return store.NewMemoryStore(), func() {}, nil
	}
	st, err := store.DialRedis(ctx, addr, cfg.GameTTL)
	if err != nil {
		return nil, nil, err
	}
	return st, func() {
		if c, ok := st.(io.Closer); ok {
			_ = c.Close()
		}
	}, nil
}
