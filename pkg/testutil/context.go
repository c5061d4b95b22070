package testutil

import (
	"context"
	"net/http"
	"time"

	"parcours/pkg/requestcontext"
)

// WithActor puts matricule in the request context, as the auth middleware
// does for a valid token.
func WithActor(req *http.Request, matricule string) *http.Request {
	return req.WithContext(requestcontext.WithActor(req.Context(), matricule))
}

// ActorContext builds the context a command handler sees: an actor, a
// language and a pinned clock.
func ActorContext(matricule, language string, now time.Time) context.Context {
	ctx := requestcontext.WithActor(context.Background(), matricule)
	ctx = requestcontext.WithLanguage(ctx, language)
	return requestcontext.WithTime(ctx, now)
}
