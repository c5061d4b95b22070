// Package requesttime pins "now" for the duration of a request so every
// timestamp written by one command (history entries, decision dates, minutes)
// agrees.
package requesttime

import (
	"net/http"
	"time"

	"parcours/pkg/requestcontext"
)

// Middleware stamps the request context with clock().
func Middleware(clock func() time.Time) func(http.Handler) http.Handler {
	if clock == nil {
		clock = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), clock())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
