package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whanyu1212/go-basics/internal/game"
)

// failingReader returns data once, then a non-EOF error.
type failingReader struct {
	data string
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.done && f.data != "" {
		f.done = true
		return copy(p, f.data), nil
	}
	return 0, errors.New("device unplugged")
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestEcho(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Echo(strings.NewReader("hello there  \nignored\n"), &out))

	want := "Guess the number!\nPlease input your guess.\nYou guessed: hello there  \n\n"
	assert.Equal(t, want, out.String())
}

func TestEchoEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Echo(strings.NewReader(""), &out))
	assert.True(t, strings.HasSuffix(out.String(), "You guessed: \n"))
}

func TestEchoReadFailure(t *testing.T) {
	var out bytes.Buffer
	err := Echo(&failingReader{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device unplugged")
	assert.NotContains(t, out.String(), "You guessed")
}

func TestPlayWin(t *testing.T) {
	var out bytes.Buffer
	g := game.New(42)
	require.NoError(t, Play(strings.NewReader("10\n100\n42\n"), &out, g))

	want := []string{
		"Guess the number!",
		"Type 'quit' to exit.",
		"Please input your guess:",
		"You guessed: 10",
		"Too small!",
		"Please input your guess:",
		"You guessed: 100",
		"Too big!",
		"Please input your guess:",
		"You guessed: 42",
		"You win!",
	}
	if diff := cmp.Diff(want, lines(out.String())); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, game.StateWon, g.State)
}

func TestPlayRetriesOnGarbage(t *testing.T) {
	var out bytes.Buffer
	g := game.New(5)
	require.NoError(t, Play(strings.NewReader("five\n\n5\n"), &out, g))

	got := lines(out.String())
	assert.Equal(t, 2, strings.Count(out.String(), "Please type a number or 'quit'!"))
	assert.Equal(t, "You win!", got[len(got)-1])
	assert.Equal(t, 1, g.Guesses)
}

func TestPlayQuitDoesNotRevealSecret(t *testing.T) {
	var out bytes.Buffer
	g := game.New(73)
	require.NoError(t, Play(strings.NewReader("  quit  \n50\n"), &out, g))

	assert.Equal(t, game.StateQuit, g.State)
	assert.NotContains(t, out.String(), "73")
	got := lines(out.String())
	assert.Equal(t, "Goodbye!", got[len(got)-1])
}

func TestPlayLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Play(strings.NewReader("9"), &out, game.New(9)))
	assert.Contains(t, out.String(), "You win!")
}

func TestPlayInputClosed(t *testing.T) {
	var out bytes.Buffer
	err := Play(strings.NewReader("1\n"), &out, game.New(50))
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPlayReadFailure(t *testing.T) {
	var out bytes.Buffer
	err := Play(&failingReader{data: "1\n"}, &out, game.New(50))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out.String(), "Too small!")
}
