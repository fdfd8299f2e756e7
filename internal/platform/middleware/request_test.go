package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"hsse/internal/platform/metrics"
	"hsse/internal/platform/middleware"
	"hsse/pkg/requestcontext"
	"hsse/pkg/testutil"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	testutil.Given(t, "a caller supplied request id", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/")
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		rr := testutil.DoRequest(h, req)

		testutil.Then(t, "it is propagated and echoed", func(t *testing.T) {
			assert.Equal(t, "abc-123", seen)
			assert.Equal(t, "abc-123", rr.Header().Get(middleware.HeaderRequestID))
		})
	})

	testutil.Given(t, "no request id", func(t *testing.T) {
		rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/"))

		testutil.Then(t, "one is generated", func(t *testing.T) {
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rr.Header().Get(middleware.HeaderRequestID))
		})
	})
}

func TestActor(t *testing.T) {
	var actor string
	h := middleware.Actor(discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = requestcontext.ActorID(r.Context()).String()
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid actor", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/")
		req.Header.Set(middleware.HeaderActorID, "11111111-2222-4333-8444-555555555555")
		rr := testutil.DoRequest(h, req)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
		assert.Equal(t, "11111111-2222-4333-8444-555555555555", actor)
	})

	t.Run("malformed actor", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/")
		req.Header.Set(middleware.HeaderActorID, "bob")
		rr := testutil.DoRequest(h, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestRecovery(t *testing.T) {
	h := middleware.Recovery(discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/"))
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
}

func TestLogger_RecordsRoutePattern(t *testing.T) {
	m := metrics.NewWith(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(middleware.Logger(discard(), m))
	r.Get("/audits/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/audits/42"))
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	assert.Equal(t, float64(1), promtest.ToFloat64(m.Requests.WithLabelValues("GET", "/audits/{id}", "418")))
}
