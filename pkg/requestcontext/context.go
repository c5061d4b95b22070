// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets the values; lifecycle handlers only read them. Keeping this
// package free of net/http lets handlers, workers and tests share it.
//
//	actor := requestcontext.Actor(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject a fixed clock with requestcontext.WithTime.
package requestcontext

import (
	"context"
	"time"
)

type (
	actorKey       struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
	languageKey    struct{}
)

// Actor returns the matricule of the authenticated caller, or "" when unknown.
func Actor(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}

// WithActor injects the caller matricule.
func WithActor(ctx context.Context, matricule string) context.Context {
	return context.WithValue(ctx, actorKey{}, matricule)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// DefaultLanguage is the language used when none is known.
const DefaultLanguage = "fr-be"

// Language returns the caller's preferred language, defaulting to DefaultLanguage.
func Language(ctx context.Context) string {
	if v, ok := ctx.Value(languageKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultLanguage
}

func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, languageKey{}, language)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (workers, CLI).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
