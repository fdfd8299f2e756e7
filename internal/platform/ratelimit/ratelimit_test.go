package ratelimit_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/platform/ratelimit"
	"hsse/pkg/platform/middleware/metadata"
	"hsse/pkg/testutil"
)

func TestInMemoryStore_SlidingWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store := ratelimit.NewInMemoryStore().WithClock(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := store.Allow(ctx, "actor:a", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
		now = now.Add(10 * time.Second)
	}

	res, err := store.Allow(ctx, "actor:a", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 30, res.RetryAfter, "oldest request leaves the window at 09:01:00")

	other, err := store.Allow(ctx, "actor:b", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are independent")

	now = now.Add(31 * time.Second)
	res, err = store.Allow(ctx, "actor:a", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestInMemoryStore_ForgetsIdleKeys(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store := ratelimit.NewInMemoryStore().WithClock(func() time.Time { return now })
	ctx := context.Background()

	for _, key := range []string{"ip:10.0.0.1", "ip:10.0.0.2", "ip:10.0.0.3"} {
		_, err := store.Allow(ctx, key, 5, time.Minute)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.Tracked())

	now = now.Add(2 * time.Minute)
	_, err := store.Allow(ctx, "actor:a", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Tracked(), "keys idle for a full window are dropped")
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (ratelimit.Result, error) {
	return ratelimit.Result{}, assert.AnError
}

func TestWrites(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	newRequest := func(method string) *http.Request {
		req := httptest.NewRequest(method, "/audits/1/start", nil)
		return req.WithContext(metadata.WithClientMetadata(req.Context(), "10.0.0.1", "test"))
	}

	t.Run("reads are never limited", func(t *testing.T) {
		h := ratelimit.Writes(ratelimit.NewInMemoryStore(), 1, time.Minute, logger)(ok)
		for i := 0; i < 3; i++ {
			rr := testutil.DoRequest(h, newRequest(http.MethodGet))
			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
		}
	})

	t.Run("writes beyond the limit get 429", func(t *testing.T) {
		h := ratelimit.Writes(ratelimit.NewInMemoryStore(), 2, time.Minute, logger)(ok)

		rr := testutil.DoRequest(h, newRequest(http.MethodPost))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))

		testutil.DoRequest(h, newRequest(http.MethodPost))
		rr = testutil.DoRequest(h, newRequest(http.MethodPost))
		testutil.AssertStatusAndError(t, rr, http.StatusTooManyRequests, "rate_limit_exceeded")
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	})

	t.Run("actors have their own budget", func(t *testing.T) {
		h := ratelimit.Writes(ratelimit.NewInMemoryStore(), 1, time.Minute, logger)(ok)

		rr := testutil.DoRequest(h, newRequest(http.MethodPost))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		req := testutil.WithActor(newRequest(http.MethodPost), "11111111-2222-4333-8444-555555555555")
		rr = testutil.DoRequest(h, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("store failures let the request through", func(t *testing.T) {
		h := ratelimit.Writes(failingStore{}, 1, time.Minute, logger)(ok)
		rr := testutil.DoRequest(h, newRequest(http.MethodPost))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("zero limit disables throttling", func(t *testing.T) {
		h := ratelimit.Writes(failingStore{}, 0, time.Minute, logger)(ok)
		rr := testutil.DoRequest(h, newRequest(http.MethodPost))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
	})
}
