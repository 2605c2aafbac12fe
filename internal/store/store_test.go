package store

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whanyu1212/go-basics/internal/game"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb, time.Hour),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := game.NewDaily(42, "ana")
			_, err := g.Apply("10")
			require.NoError(t, err)
			require.NoError(t, st.Save(ctx, g))

			got, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			assert.Equal(t, g.ID, got.ID)
			assert.Equal(t, g.Secret, got.Secret)
			assert.Equal(t, 1, got.Guesses)
			assert.Equal(t, game.ModeDaily, got.Mode)
			assert.Equal(t, "ana", got.Player)
			assert.True(t, g.StartedAt.Equal(got.StartedAt))
		})
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := game.New(42)
			require.NoError(t, st.Save(ctx, g))

			got, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			_, err = got.Apply("42")
			require.NoError(t, err)

			again, err := st.Get(ctx, g.ID)
			require.NoError(t, err)
			assert.Equal(t, game.StateAwaiting, again.State)
		})
	}
}

func TestStoreNotFoundAndDelete(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := st.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			g := game.New(1)
			require.NoError(t, st.Save(ctx, g))
			require.NoError(t, st.Delete(ctx, g.ID))
			_, err = st.Get(ctx, g.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, st.Delete(ctx, "missing"))
		})
	}
}

func TestRedisStoreTTL(t *testing.T) {
	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	st := NewRedisStore(rdb, time.Minute)
	g := game.New(3)
	require.NoError(t, st.Save(ctx, g))
	assert.Equal(t, time.Minute, m.TTL(keyPrefix+g.ID))

	m.FastForward(2 * time.Minute)
	_, err := st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDialRedis(t *testing.T) {
	m := miniredis.RunT(t)
	st, err := DialRedis(context.Background(), m.Addr(), 0)
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), game.New(9)))
	require.NoError(t, st.(io.Closer).Close())

	m.Close()
	_, err = DialRedis(context.Background(), m.Addr(), 0)
	assert.Error(t, err)
}
