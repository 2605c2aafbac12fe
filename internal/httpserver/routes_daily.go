// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily game.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's game (secret derived from date + salt)
//   - POST /daily/guess       → same as /game/guess, for daily games only
//   - GET  /daily/leaderboard → top 20 wins for today (or ?date=YYYY-MM-DD)
//
// A named player may finish the daily game once per date; the check is made
// against history, so it only applies when history is enabled.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/whanyu1212/go-basics/internal/daily"
	"github.com/whanyu1212/go-basics/internal/game"
	"github.com/whanyu1212/go-basics/internal/history"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.With(s.requireToken()).Post("/guess", s.guessHandler(game.ModeDaily))
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string `json:"gameId,omitempty"`
	Token  string `json:"token,omitempty"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleDailyNew starts today's daily game.
// If the player already has a result for today, Played=true and no game is created.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	req, err := decodeNewGame(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	now := s.opts.Now()
	date := daily.DateKey(now)

	if req.Player != "" && s.hist != nil {
		played, err := s.hist.DailyAlreadyPlayed(r.Context(), req.Player, date)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("daily already played")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		if played {
			writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
			return
		}
	}

	g := game.NewDaily(daily.Secret(now, s.opts.DailySalt), req.Player)
	g.StartedAt = now.UTC()
	tok, ok := s.startGame(w, r, g)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Token: tok, Date: date})
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string          `json:"date"`
	Top  []history.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		writeError(w, http.StatusServiceUnavailable, "history disabled")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.opts.Now())
	}
	rows, err := s.hist.Leaderboard(r.Context(), date, 20)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
