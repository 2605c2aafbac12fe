package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/whanyu1212/go-basics/internal/daily"
	"github.com/whanyu1212/go-basics/internal/history"
)

func newStatsCmd(db *string) *cobra.Command {
	var (
		player string
		date   string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print recorded results and the daily leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if *db == "" {
				return errors.New("stats needs --db or HISTORY_DB")
			}
			ctx := cmd.Context()
			hist, err := history.OpenAndMigrate(ctx, *db)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer hist.Close()

			sum, err := hist.Summary(ctx, player)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			who := player
			if who == "" {
				who = "everyone"
			}
			fmt.Fprintf(out, "Results for %s\n", who)
			fmt.Fprintf(out, "  played: %d\n  wins:   %d\n  quits:  %d\n", sum.Played, sum.Wins, sum.Quits)
			if sum.Wins > 0 {
				fmt.Fprintf(out, "  best:   %d guesses\n  avg:    %.1f guesses\n", sum.BestGuesses, sum.AvgGuesses)
			}

			if date == "" {
				date = daily.DateKey(time.Now())
			}
			rows, err := hist.Leaderboard(ctx, date, limit)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Daily leaderboard %s\n", date)
			if len(rows) == 0 {
				fmt.Fprintln(out, "  no wins yet")
			}
			for i, r := range rows {
				name := r.Player
				if name == "" {
					name = "(anonymous)"
				}
				fmt.Fprintf(out, "  %2d. %-24s %3d guesses %8s\n", i+1, name, r.Guesses,
					(time.Duration(r.ElapsedMs) * time.Millisecond).Round(time.Second))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "only count this player's games")
	cmd.Flags().StringVar(&date, "date", "", "leaderboard date YYYY-MM-DD (default today, UTC)")
	cmd.Flags().IntVar(&limit, "limit", 10, "leaderboard size")
	return cmd
}
