package history

import (
	"context"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/whanyu1212/go-basics/internal/daily"
	"github.com/whanyu1212/go-basics/internal/game"
)

// ErrAlreadyPlayed is returned by Record when a named player already has a
// daily result for that date.
var ErrAlreadyPlayed = errors.New("daily game already played")

// Result is one finished game.
type Result struct {
	GameID     string    `json:"gameId"`
	Mode       game.Mode `json:"mode"`
	Player     string    `json:"player,omitempty"`
	Date       string    `json:"date"` // YYYY-MM-DD (UTC) the game started
	Secret     uint32    `json:"secret"`
	Guesses    int       `json:"guesses"`
	Outcome    string    `json:"outcome"` // won | quit
	ElapsedMs  int64     `json:"elapsedMs"`
	FinishedAt time.Time `json:"finishedAt"`
}

// FromGame builds the Result for a finished game.
func FromGame(g *game.Game) Result {
	return Result{
		GameID:     g.ID,
		Mode:       g.Mode,
		Player:     g.Player,
		Date:       daily.DateKey(g.StartedAt),
		Secret:     g.Secret,
		Guesses:    g.Guesses,
		Outcome:    string(g.State),
		ElapsedMs:  g.Elapsed().Milliseconds(),
		FinishedAt: g.FinishedAt,
	}
}

// Record inserts a result row.
func (d *DB) Record(ctx context.Context, r Result) error {
	_, err := d.SQL.ExecContext(ctx, `
        INSERT INTO games
            (id, mode, player, date, secret, guesses, outcome, elapsed_ms, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, string(r.Mode), r.Player, r.Date, r.Secret, r.Guesses, r.Outcome,
		r.ElapsedMs, r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique && r.Mode == game.ModeDaily {
		return ErrAlreadyPlayed
	}
	return err
}

// Summary aggregates finished games.
type Summary struct {
	Played      int     `json:"played"`
	Wins        int     `json:"wins"`
	Quits       int     `json:"quits"`
	BestGuesses int     `json:"bestGuesses"` // 0 until the first win
	AvgGuesses  float64 `json:"avgGuesses"`  // over wins only
}

// Summary returns totals for player, or for everyone if player is empty.
func (d *DB) Summary(ctx context.Context, player string) (Summary, error) {
	var s Summary
	err := d.SQL.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(outcome = 'won'), 0),
               COALESCE(SUM(outcome = 'quit'), 0),
               COALESCE(MIN(CASE WHEN outcome = 'won' THEN guesses END), 0),
               COALESCE(AVG(CASE WHEN outcome = 'won' THEN guesses END), 0)
        FROM games
        WHERE ? = '' OR player = ?`, player, player,
	).Scan(&s.Played, &s.Wins, &s.Quits, &s.BestGuesses, &s.AvgGuesses)
	return s, err
}

// DailyAlreadyPlayed reports whether player has a daily result for date.
func (d *DB) DailyAlreadyPlayed(ctx context.Context, player, date string) (bool, error) {
	var cnt int
	if err := d.SQL.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM games WHERE mode='daily' AND player=? AND date=?`,
		player, date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// LBRow is one leaderboard entry.
type LBRow struct {
	Player    string `json:"player"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Leaderboard returns the best daily wins for date: fewest guesses, then
// fastest, then earliest. Default limit is 20.
func (d *DB) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.SQL.QueryContext(ctx, `
        SELECT player, guesses, elapsed_ms
        FROM games
        WHERE mode='daily' AND outcome='won' AND date=?
        ORDER BY guesses ASC, elapsed_ms ASC, finished_at ASC
        LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Player, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
