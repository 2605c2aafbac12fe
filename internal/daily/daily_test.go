package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/whanyu1212/go-basics/internal/game"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2026-03-02 01:00 in UTC+9 is still 2026-03-01 in UTC.
	assert.Equal(t, "2026-03-01", DateKey(time.Date(2026, 3, 2, 1, 0, 0, 0, loc)))
}

func TestSecretDeterministic(t *testing.T) {
	morning := time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Secret(morning, "salt"), Secret(evening, "salt"))
}

func TestSecretInRange(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[uint32]bool{}
	for i := 0; i < 365; i++ {
		s := Secret(day.AddDate(0, 0, i), "salt")
		assert.GreaterOrEqual(t, s, game.MinSecret)
		assert.LessOrEqual(t, s, game.MaxSecret)
		seen[s] = true
	}
	// a year of secrets should not collapse onto a handful of values
	assert.Greater(t, len(seen), 30)
}

func TestSecretDependsOnSalt(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differs := false
	for i := 0; i < 10 && !differs; i++ {
		d := day.AddDate(0, 0, i)
		differs = Secret(d, "a") != Secret(d, "b")
	}
	assert.True(t, differs)
}
