package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/audit/store/lock"
	"hsse/pkg/platform/sentinel"
)

func TestLocal_SerializesSameKey(t *testing.T) {
	l := lock.NewLocal()
	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "audit:1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestLocal_DistinctKeysDoNotBlock(t *testing.T) {
	l := lock.NewLocal()
	releaseA, err := l.Acquire(context.Background(), "audit:1")
	require.NoError(t, err)
	defer releaseA()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	releaseB, err := l.Acquire(ctx, "audit:2")
	require.NoError(t, err)
	releaseB()
}

func TestLocal_ContextEndsWait(t *testing.T) {
	l := lock.NewLocal()
	release, err := l.Acquire(context.Background(), "audit:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "audit:1")
	assert.ErrorIs(t, err, sentinel.ErrLocked)

	release()
	release()

	again, err := l.Acquire(context.Background(), "audit:1")
	require.NoError(t, err)
	again()
}
