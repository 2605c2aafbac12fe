// internal/config/config.go
//
// Process configuration shared by the binaries.
//
// Environment variables (a .env file in the working directory is loaded first):
//   LOG_LEVEL    zerolog level name (default "info")
//   PORT         HTTP port for `guess serve` (default 5175)
//   HISTORY_DB   SQLite path for finished games; empty disables history
//   REDIS_ADDR   host:port of Redis for HTTP sessions; empty uses memory
//   GAME_TTL     lifetime of an HTTP game session (default 24h)
//   DAILY_SALT   salt for the daily secret
//   JWT_SECRET   HS256 key for game tokens
//   TOKEN_TTL    lifetime of a game token (default 24h)

package config

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel  string
	Port      string
	HistoryDB string
	RedisAddr string
	GameTTL   time.Duration
	DailySalt string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Port:      getEnv("PORT", "5175"),
		HistoryDB: os.Getenv("HISTORY_DB"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		GameTTL:   getDuration("GAME_TTL", 24*time.Hour),
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret: getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
	}
}

// SetupLogging points the global logger at a console writer on w (stderr in
// the binaries, so stdout only carries program output) and applies level.
// An unknown level leaves the current global level untouched.
func SetupLogging(w io.Writer, level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getDuration accepts Go durations ("90m") or a bare number of seconds.
func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
