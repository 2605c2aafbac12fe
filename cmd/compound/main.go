// Command compound prints elements of a fixed tuple and a fixed array.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/whanyu1212/go-basics/internal/compound"
	"github.com/whanyu1212/go-basics/internal/config"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(os.Stderr, cfg.LogLevel)

	if err := compound.Demo(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}
