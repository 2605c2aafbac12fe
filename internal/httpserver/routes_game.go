// internal/httpserver/routes_game.go
//
// Classic game endpoints:
//   - POST /game/new   → draw a secret, return gameId + token
//   - POST /game/guess → apply one line of input (token required)
//
// The guess handler is shared with /daily/guess; it only differs by the game
// mode it accepts.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/whanyu1212/go-basics/internal/game"
	"github.com/whanyu1212/go-basics/internal/history"
	"github.com/whanyu1212/go-basics/internal/store"
)

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.With(s.requireToken()).Post("/guess", s.guessHandler(game.ModeClassic))
	})
}

// newGameReq is the optional body of POST /game/new and /daily/new.
type newGameReq struct {
	Player string `json:"player"`
}

// newGameRes is returned by POST /game/new.
type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	Min    uint32 `json:"min"`
	Max    uint32 `json:"max"`
}

// decodeNewGame reads the optional body; an empty body is allowed.
func decodeNewGame(r *http.Request) (newGameReq, error) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errBadJSON
	}
	req.Player = normalizePlayer(req.Player)
	if req.Player != "" {
		if err := validatePlayer(req.Player); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	req, err := decodeNewGame(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g := game.New(0)
	g.Player = req.Player
	tok, ok := s.startGame(w, r, g)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Token: tok, Min: game.MinSecret, Max: game.MaxSecret})
}

// startGame saves g and signs its token, writing the error response itself
// when either fails.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, g *game.Game) (string, bool) {
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return "", false
	}
	tok, err := s.signToken(g)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return "", false
	}
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("mode", string(g.Mode)).Msg("game started")
	return tok, true
}

// guessReq/Res payloads for POST /game/guess and /daily/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	Message string       `json:"message"`
	State   game.State   `json:"state"`
	Guesses int          `json:"guesses"`
}

// guessHandler applies a guess to a stored game of the given mode, saves it,
// and records it in history once it is finished.
func (s *Server) guessHandler(mode game.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req guessReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadJSON.Error())
			return
		}
		if c := claimsFrom(r.Context()); c == nil || c.GameID != req.GameID {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		g, err := s.store.Get(r.Context(), req.GameID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && g.Mode != mode) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("load game")
			writeError(w, http.StatusInternalServerError, "load_failed")
			return
		}

		out, err := g.Apply(req.Guess)
		if errors.Is(err, game.ErrFinished) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if out != game.OutcomeInvalid {
			if err := s.store.Save(r.Context(), g); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("save game")
				writeError(w, http.StatusInternalServerError, "save_failed")
				return
			}
		}
		if g.State.Finished() {
			s.record(r, g)
		}

		writeJSON(w, http.StatusOK, guessRes{Outcome: out, Message: out.Message(), State: g.State, Guesses: g.Guesses})
	}
}

// record persists a finished game (best effort, non-fatal if it fails).
func (s *Server) record(r *http.Request, g *game.Game) {
	if s.hist == nil {
		return
	}
	err := s.hist.Record(r.Context(), history.FromGame(g))
	switch {
	case errors.Is(err, history.ErrAlreadyPlayed):
		hlog.FromRequest(r).Warn().Str("player", g.Player).Msg("daily result already recorded")
	case err != nil:
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("record game")
	}
}
