package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whanyu1212/go-basics/internal/game"
)

const keyPrefix = "guess:game:"

// redisStore keeps each game as a JSON string with a TTL, so abandoned games expire.
type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing client. A ttl of zero keeps games forever.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

// DialRedis connects to addr and pings it before returning the store.
func DialRedis(ctx context.Context, addr string, ttl time.Duration) (Store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisStore(rdb, ttl), nil
}

func key(id string) string { return keyPrefix + id }

func (s *redisStore) Save(ctx context.Context, g *game.Game) error {
	b, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode game: %w", err)
	}
	return s.rdb.Set(ctx, key(g.ID), b, s.ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*game.Game, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var g game.Game
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return &g, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

// Close closes the underlying client.
func (s *redisStore) Close() error { return s.rdb.Close() }
