// internal/game/types.go
//
// Core type definitions for the number guessing game.
// Defines:
//   - State:   where a game is in its lifecycle (awaiting/won/quit).
//   - Outcome: result of feeding one line of input to a game.
//   - Game:    state for a single in-progress or finished game.

package game

import "time"

// State is the coarse lifecycle state of a game.
type State string

const (
	StateAwaiting State = "awaiting" // waiting for the next guess
	StateWon      State = "won"
	StateQuit     State = "quit"
)

// Finished reports whether no further input is accepted.
func (s State) Finished() bool { return s == StateWon || s == StateQuit }

// Outcome is the evaluation of one line of input.
type Outcome string

const (
	OutcomeTooSmall Outcome = "too_small"
	OutcomeTooBig   Outcome = "too_big"
	OutcomeWin      Outcome = "win"
	OutcomeInvalid  Outcome = "invalid" // not a number and not the quit keyword
	OutcomeQuit     Outcome = "quit"
)

// Message returns the line printed to the player for o.
func (o Outcome) Message() string {
	switch o {
	case OutcomeTooSmall:
		return "Too small!"
	case OutcomeTooBig:
		return "Too big!"
	case OutcomeWin:
		return "You win!"
	case OutcomeInvalid:
		return "Please type a number or 'quit'!"
	case OutcomeQuit:
		return "Goodbye!"
	}
	return ""
}

// Mode distinguishes a freely drawn secret from the deterministic daily one.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Game holds the state of a single guessing game.
// Secret is exported so stores can serialise the game; never send it to a player.
type Game struct {
	ID         string    `json:"id"`
	Mode       Mode      `json:"mode"`
	Player     string    `json:"player,omitempty"`
	Secret     uint32    `json:"secret"`
	Guesses    int       `json:"guesses"` // numeric guesses only
	State      State     `json:"state"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}
