package testutil

import (
	"net/http"
	"time"

	id "hsse/pkg/domain"
	"hsse/pkg/requestcontext"
)

// WithActor adds the acting user to the request context, as the actor
// middleware would. Invalid UUIDs are ignored.
func WithActor(req *http.Request, userID string) *http.Request {
	actor, err := id.ParseUserID(userID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithActorID(req.Context(), actor))
}

// WithRequestTime pins the request clock so handlers produce deterministic
// timestamps.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
