package limiter

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// fixed window counter; first hit sets the expiry, the rest just increment
var hitScript = redis.NewScript(`
	-- KEYS[1] = ratelimit:{scope}:{client}
	-- ARGV[1] = window seconds

	local hits = redis.call("INCR", KEYS[1])
	if hits == 1 then
		redis.call("EXPIRE", KEYS[1], tonumber(ARGV[1]))
	end
	return hits
`)

// RateLimiter counts requests per client in fixed windows backed by redis.
// A nil limiter allows everything, which is how the service runs when no
// redis address is configured.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(addr string, limit int, window time.Duration) (*RateLimiter, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     addr,
			Password: "",
			DB:       0,
		},
	)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}, nil
}

func makeKey(scope, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, client)
}

// Allow reports whether the client still fits the current window. Errors
// talking to redis fail open.
func (l *RateLimiter) Allow(scope, client string) (bool, error) {
	if l == nil {
		return true, nil
	}

	key := makeKey(scope, client)
	hits, err := hitScript.Run(ctx, l.client, []string{key}, int(l.window.Seconds())).Int64()
	if err != nil {
		return true, err
	}
	return hits <= l.limit, nil
}

func (l *RateLimiter) Close() error {
	if l == nil {
		return nil
	}
	return l.client.Close()
}
