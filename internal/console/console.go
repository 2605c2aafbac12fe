// internal/console/console.go
//
// Line-oriented terminal front end for the echo program and the guessing game.
// Responsibilities:
//   - Echo: read one line and print it back.
//   - Play: drive a game.Game from stdin lines until it is won or quit.
//
// Read failures are returned wrapped; callers treat them as fatal.
// Everything printed here goes to the writer passed in, never to the logger.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/whanyu1212/go-basics/internal/game"
)

// ErrInputClosed is returned by Play when stdin ends before the game does.
var ErrInputClosed = errors.New("input closed")

// Echo prints the greeting, reads one line from r and writes it back to w.
// The line keeps its trailing newline. End of input with nothing read echoes an
// empty line.
func Echo(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Guess the number!")
	fmt.Fprintln(w, "Please input your guess.")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read line: %w", err)
	}
	_, err = fmt.Fprintf(w, "You guessed: %s\n", line)
	return err
}

// Play runs the interactive loop for g until it reaches a terminal state.
// Returns nil on win or quit.
func Play(r io.Reader, w io.Writer, g *game.Game) error {
	fmt.Fprintln(w, "Guess the number!")
	fmt.Fprintf(w, "Type '%s' to exit.\n", game.QuitKeyword)

	br := bufio.NewReader(r)
	for {
		fmt.Fprintln(w, "Please input your guess:")

		line, err := readLine(br)
		if err != nil {
			return err
		}

		out, err := g.Apply(line)
		if err != nil {
			return err
		}
		log.Debug().Str("game", g.ID).Str("outcome", string(out)).Int("guesses", g.Guesses).Msg("guess")

		switch out {
		case game.OutcomeInvalid:
			fmt.Fprintln(w, out.Message())
			continue
		case game.OutcomeQuit:
			fmt.Fprintln(w, out.Message())
			return nil
		}

		n, _ := game.ParseGuess(line)
		fmt.Fprintf(w, "You guessed: %d\n", n)
		fmt.Fprintln(w, out.Message())
		if out == game.OutcomeWin {
			return nil
		}
	}
}

// readLine returns the next line including any trailing newline.
// A final unterminated line is returned as-is; end of input after that is
// reported as ErrInputClosed.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("read guess: %w", ErrInputClosed)
	default:
		return "", fmt.Errorf("read guess: %w", err)
	}
}
