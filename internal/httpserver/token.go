// internal/httpserver/token.go
//
// Per-game bearer tokens.
// A token is an HS256 JWT naming the game it may play (gid) and, optionally,
// the player. Guess endpoints accept a request only when the token's gid
// matches the gameId in the body, so game IDs alone cannot be replayed.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whanyu1212/go-basics/internal/game"
)

const tokenIssuer = "go-basics/guess"

// gameClaims is the JWT payload.
type gameClaims struct {
	GameID string `json:"gid"`
	Player string `json:"player,omitempty"`
	jwt.RegisteredClaims
}

// ctxClaimsKey is the context key type for storing *gameClaims.
type ctxClaimsKey struct{}

// signToken issues a token for g valid for opts.TokenTTL.
func (s *Server) signToken(g *game.Game) (string, error) {
	now := s.opts.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: g.ID,
		Player: g.Player,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
		},
	})
	return t.SignedString([]byte(s.opts.JWTSecret))
}

// parseToken verifies signature, algorithm, issuer and expiry.
func (s *Server) parseToken(tok string) (*gameClaims, error) {
	claims := &gameClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.opts.Now),
	)
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.GameID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// requireToken enforces a valid game token and injects its claims into the
// request context.
func (s *Server) requireToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearer(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			claims, err := s.parseToken(tok)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxClaimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimsFrom(ctx context.Context) *gameClaims {
	c, _ := ctx.Value(ctxClaimsKey{}).(*gameClaims)
	return c
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
