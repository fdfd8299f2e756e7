package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hsse/pkg/platform/httputil"
	"hsse/pkg/platform/middleware/metadata"
	"hsse/pkg/requestcontext"
)

// Writes returns middleware that throttles non-read requests. A store
// error lets the request through.
func Writes(store Store, limit int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 || isRead(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			key := "ip:" + metadata.GetClientIP(ctx)
			if actor := requestcontext.ActorID(ctx); !actor.IsNil() {
				key = "actor:" + actor.String()
			}

			result, err := store.Allow(ctx, key, limit, window)
			if err != nil {
				logger.ErrorContext(ctx, "rate limit check failed",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
			if !result.Allowed {
				logger.WarnContext(ctx, "rate limit exceeded",
					"request_id", requestcontext.RequestID(ctx),
					"key", key,
				)
				w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
				httputil.WriteJSON(w, http.StatusTooManyRequests, httputil.ErrorResponse{
					Error:            "rate_limit_exceeded",
					ErrorDescription: "too many write requests, retry later",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
