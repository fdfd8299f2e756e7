//go:build integration

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/platform/ratelimit"
	"hsse/pkg/testutil/containers"
)

func TestRedisStore(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	store := ratelimit.NewRedisStore(rc.Client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := store.Allow(ctx, "actor:a", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "actor:a", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.GreaterOrEqual(t, res.RetryAfter, 1)

	res, err = store.Allow(ctx, "actor:b", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	ttl, err := rc.Client.PTTL(ctx, "hsse:ratelimit:actor:a").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
