// Command guess is the number guessing game.
//
//	guess                 play in the terminal
//	guess --daily         play today's shared secret
//	guess serve           serve the game over HTTP
//	guess stats           print recorded results
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/whanyu1212/go-basics/internal/config"
)

func main() {
	cfg := config.Load()
	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Fatal().Err(err).Msg("guess")
	}
}
