package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window limiter backed by redis, so the limit
// holds across instances. Each key gets one counter per window,
// expired by redis itself.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	seconds := int64(l.window / time.Second)
	windowKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().Unix()/seconds)

	incrCmd := l.client.B().Incr().Key(windowKey).Build()
	count, err := l.client.Do(ctx, incrCmd).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expireCmd := l.client.B().Expire().Key(windowKey).Seconds(seconds).Build()
		if err := l.client.Do(ctx, expireCmd).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
