package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parcours/pkg/platform/httputil"
	"parcours/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims is the caller identity extracted from a bearer token.
type Claims struct {
	Matricule string
	Language  string
	TokenID   string
}

type unauthorizedBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// RequireActor rejects requests without a valid bearer token and stores the
// caller matricule and language for the lifecycle handlers.
func RequireActor(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteJSON(w, http.StatusUnauthorized, unauthorizedBody{
					Error:       "unauthorized",
					Description: "Missing or invalid Authorization header",
				})
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteJSON(w, http.StatusUnauthorized, unauthorizedBody{
					Error:       "unauthorized",
					Description: "Invalid or expired token",
				})
				return
			}

			ctx = requestcontext.WithActor(ctx, claims.Matricule)
			if lang := r.Header.Get("Accept-Language"); lang != "" {
				ctx = requestcontext.WithLanguage(ctx, lang)
			} else if claims.Language != "" {
				ctx = requestcontext.WithLanguage(ctx, claims.Language)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
