//go:build integration

package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/audit/store/lock"
	"hsse/pkg/platform/sentinel"
	"hsse/pkg/testutil/containers"
)

func TestRedis_Lease(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	t.Run("second holder waits then fails", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		l := lock.NewRedis(rc.Client, lock.WithWait(100*time.Millisecond), lock.WithRetryInterval(10*time.Millisecond))

		release, err := l.Acquire(ctx, "1")
		require.NoError(t, err)
		_, err = l.Acquire(ctx, "1")
		assert.ErrorIs(t, err, sentinel.ErrLocked)

		release()
		again, err := l.Acquire(ctx, "1")
		require.NoError(t, err)
		again()
	})

	t.Run("expired holder cannot release new owner", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		l := lock.NewRedis(rc.Client,
			lock.WithTTL(50*time.Millisecond),
			lock.WithWait(time.Second),
			lock.WithRetryInterval(10*time.Millisecond),
		)

		stale, err := l.Acquire(ctx, "2")
		require.NoError(t, err)
		time.Sleep(80 * time.Millisecond)

		owner, err := l.Acquire(ctx, "2")
		require.NoError(t, err)
		defer owner()

		stale()
		exists, err := rc.Client.Exists(ctx, "hsse:audit:lock:2").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})
}
