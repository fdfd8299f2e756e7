package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"hsse/pkg/platform/sentinel"
)

var acquireDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "hsse_audit_lock_acquire_duration_ms",
	Help:    "Time spent waiting for an audit lock in milliseconds",
	Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
})

const keyPrefix = "hsse:audit:lock:"

// releaseScript deletes the key only when it still carries our token, so an
// expired holder never frees a lock now owned by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease-based lock shared by every instance pointing at the same
// Redis. A lease that outlives its TTL is lost silently; the store's version
// check still rejects the stale write.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	wait   time.Duration
}

// RedisOption configures a Redis lock.
type RedisOption func(*Redis)

// WithTTL sets the lease length.
func WithTTL(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// WithWait bounds how long Acquire polls before giving up.
func WithWait(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.wait = d
		}
	}
}

func WithRetryInterval(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.retry = d
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		ttl:    10 * time.Second,
		retry:  25 * time.Millisecond,
		wait:   2 * time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Acquire takes the lease for key with SET NX PX, polling until the wait
// budget or ctx runs out.
func (r *Redis) Acquire(ctx context.Context, key string) (Release, error) {
	start := time.Now()
	defer func() {
		acquireDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	redisKey := keyPrefix + key
	token := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, r.wait)
	defer cancel()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, sentinel.ErrLocked
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, errors.Join(sentinel.ErrUnavailable, err))
		}
		if ok {
			return r.releaser(redisKey, token), nil
		}
		select {
		case <-ctx.Done():
			return nil, sentinel.ErrLocked
		case <-ticker.C:
		}
	}
}

func (r *Redis) releaser(redisKey, token string) Release {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err()
		})
	}
}
