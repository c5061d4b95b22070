// Package httptransport is the thin HTTP front of the lifecycle buses. It
// decodes nothing itself: the message name comes from the path and the body
// is handed to the bus as is.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parcours/internal/platform/metrics"
	"parcours/internal/platform/middleware"
	"parcours/internal/ports"
	"parcours/pkg/platform/httputil"
	"parcours/pkg/platform/middleware/metadata"
	"parcours/pkg/platform/middleware/requesttime"
)

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

type RouterConfig struct {
	Commands       Dispatcher
	Queries        Dispatcher
	Files          ports.FileService
	Validator      middleware.TokenValidator
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	Clock          func() time.Time
	HealthChecks   map[string]HealthCheck
}

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter mounts the API:
//
//	POST /api/v1/commands/{name}   dispatch a command
//	POST /api/v1/queries/{name}    dispatch a query
//	GET  /api/v1/commands          list command names
//	GET  /api/v1/queries           list query names
//	POST /api/v1/files?name=       upload a file, returns a token
//	POST /api/v1/files/{token}/confirm
//	GET  /api/v1/files/{id}        file metadata
//	GET  /healthz                  dependency checks
//	GET  /metrics                  Prometheus exposition
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", healthHandler(cfg.HealthChecks))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	commands := NewMessageHandler(cfg.Commands, cfg.Logger)
	queries := NewMessageHandler(cfg.Queries, cfg.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Logger(cfg.Logger))
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(middleware.Latency(cfg.Metrics))
		api.Use(middleware.RequireActor(cfg.Validator, cfg.Logger))
		api.Use(requesttime.Middleware(cfg.Clock))

		api.Group(func(msg chi.Router) {
			msg.Use(middleware.ContentTypeJSON)
			msg.Get("/commands", commands.handleList)
			msg.Post("/commands/{name}", commands.handleDispatch)
			msg.Get("/queries", queries.handleList)
			msg.Post("/queries/{name}", queries.handleDispatch)
		})
		if cfg.Files != nil {
			NewFileHandler(cfg.Files, cfg.Logger).Register(api)
		}
	})
	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := healthBody{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				body.Checks[name] = err.Error()
				body.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			body.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, body)
	}
}
