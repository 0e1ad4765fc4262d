package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Store is a small JSON read-through cache over Redis. A nil *Store is
// valid and behaves as a permanent miss, so Redis stays optional.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *Store {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store{rdb: redis.NewClient(&redis.Options{Addr: addr}), ttl: ttl}
}

// GetJSON reports whether key was present and decoded into v.
func (s *Store) GetJSON(ctx context.Context, key string, v any) bool {
	if s == nil {
		return false
	}
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache] get %s: %v", key, err)
		}
		return false
	}
	return json.Unmarshal(b, v) == nil
}

func (s *Store) SetJSON(ctx context.Context, key string, v any) {
	if s == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

func (s *Store) Delete(ctx context.Context, keys ...string) {
	if s == nil || len(keys) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[cache] del %v: %v", keys, err)
	}
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.rdb.Close()
}
