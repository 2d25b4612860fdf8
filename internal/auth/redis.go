package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessions shares sessions across replicas.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(addr string) *RedisSessions {
	return &RedisSessions{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func sessionKey(token string) string { return "session:" + token }

func (s *RedisSessions) Start(ctx context.Context, token string, employeeID uint, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(employeeID), 10), ttl).Err()
}

func (s *RedisSessions) Lookup(ctx context.Context, token string) (uint, bool) {
	v, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (s *RedisSessions) End(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
