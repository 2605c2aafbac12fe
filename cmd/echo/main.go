// Command echo reads one line from standard input and prints it back.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/whanyu1212/go-basics/internal/config"
	"github.com/whanyu1212/go-basics/internal/console"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(os.Stderr, cfg.LogLevel)

	if err := console.Echo(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to read line")
	}
}
