package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/whanyu1212/go-basics/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Secret returns the deterministic secret for the day containing date.
// HKDF-SHA256 keyed by salt expands the date key; the first 8 bytes are reduced
// into [game.MinSecret, game.MaxSecret].
func Secret(date time.Time, salt string) uint32 {
	r := hkdf.New(sha256.New, []byte(salt), nil, []byte("daily-secret:"+DateKey(date)))
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		// hkdf only fails past 255 hash lengths of output
		panic("daily: hkdf: " + err.Error())
	}
	span := uint64(game.MaxSecret-game.MinSecret) + 1
	return game.MinSecret + uint32(binary.BigEndian.Uint64(buf[:])%span)
}
