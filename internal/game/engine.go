// internal/game/engine.go
//
// Core engine for a single guessing game.
// Responsibilities:
//   - Draw a secret uniformly from [MinSecret, MaxSecret].
//   - Classify a line of input: quit keyword, number, or neither.
//   - Compare a guess against the secret (too small / too big / win).
//   - Track state transitions: awaiting → won | quit.
//
// Notes:
//   - Unparseable input is recoverable: it produces OutcomeInvalid and leaves
//     the game untouched.
//   - Game IDs are uuids so HTTP sessions can be stored under them.
package game

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinSecret uint32 = 1
	MaxSecret uint32 = 100

	// QuitKeyword ends a game without revealing the secret.
	QuitKeyword = "quit"
)

var (
	ErrNotANumber = errors.New("not a number")
	ErrFinished   = errors.New("game finished")
)

// RandomSecret returns a cryptographically random secret in [MinSecret, MaxSecret].
func RandomSecret() uint32 {
	span := big.NewInt(int64(MaxSecret-MinSecret) + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		// crypto/rand only fails if the OS entropy source is gone.
		panic("game: read random secret: " + err.Error())
	}
	return MinSecret + uint32(n.Int64())
}

// New constructs a classic game.
// If secret is zero, a random secret is drawn.
func New(secret uint32) *Game {
	if secret == 0 {
		secret = RandomSecret()
	}
	return &Game{
		ID:        uuid.NewString(),
		Mode:      ModeClassic,
		Secret:    secret,
		State:     StateAwaiting,
		StartedAt: time.Now().UTC(),
	}
}

// NewDaily constructs a daily game for player with a pre-derived secret.
func NewDaily(secret uint32, player string) *Game {
	g := New(secret)
	g.Mode = ModeDaily
	g.Player = player
	return g
}

// IsQuit reports whether text, once trimmed, is the quit keyword.
func IsQuit(text string) bool {
	return strings.TrimSpace(text) == QuitKeyword
}

// ParseGuess trims text and parses it as an unsigned 32-bit decimal.
// A single leading '+' is accepted. Any other input yields ErrNotANumber.
func ParseGuess(text string) (uint32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(text), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrNotANumber
	}
	return uint32(n), nil
}

// Compare is the three-way comparison of guess against secret.
func Compare(guess, secret uint32) Outcome {
	switch {
	case guess < secret:
		return OutcomeTooSmall
	case guess > secret:
		return OutcomeTooBig
	default:
		return OutcomeWin
	}
}

// Apply feeds one line of input to the game.
//
// Rules:
//   - A finished game rejects input with ErrFinished.
//   - The quit keyword moves the game to StateQuit.
//   - Unparseable input returns OutcomeInvalid; nothing changes.
//   - A number increments Guesses; a match moves the game to StateWon.
func (g *Game) Apply(text string) (Outcome, error) {
	if g.State.Finished() {
		return "", ErrFinished
	}
	if IsQuit(text) {
		g.finish(StateQuit)
		return OutcomeQuit, nil
	}
	n, err := ParseGuess(text)
	if err != nil {
		return OutcomeInvalid, nil
	}
	g.Guesses++
	out := Compare(n, g.Secret)
	if out == OutcomeWin {
		g.finish(StateWon)
	}
	return out, nil
}

// Elapsed is the time from start to finish, or to now while still playing.
func (g *Game) Elapsed() time.Duration {
	end := g.FinishedAt
	if end.IsZero() {
		end = time.Now().UTC()
	}
	return end.Sub(g.StartedAt)
}

func (g *Game) finish(s State) {
	g.State = s
	g.FinishedAt = time.Now().UTC()
}
