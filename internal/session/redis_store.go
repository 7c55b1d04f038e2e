package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// NewRedisClient принимает redis:// URL или просто host:port.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis address is empty")
	}

	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// RedisStore хранит сессии как JSON с TTL, истечение делает сам Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, identity Identity) (*Record, error) {
	rec := &Record{
		ID:        uuid.NewString(),
		Identity:  identity,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+rec.ID, b, s.ttl).Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// битая запись - считаем, что сессии нет
		_ = s.rdb.Del(ctx, redisKeyPrefix+id).Err()
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+id).Err()
}
