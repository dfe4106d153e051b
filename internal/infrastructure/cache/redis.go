package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping so a dead idempotency store fails
// boot quickly instead of hanging it.
const connectTimeout = 5 * time.Second

// OpenRedis connects the idempotency store and verifies it is reachable
// before anything is wired on top of it.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
