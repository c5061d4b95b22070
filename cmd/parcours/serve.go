package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"parcours/internal/app"
	jwttoken "parcours/internal/jwt_token"
	"parcours/internal/platform/httpserver"
	httptransport "parcours/internal/transport/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the command and query API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	if cfg.UsesDevSigningKey() {
		log.Warn("using the development JWT signing key")
	}

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Commands:       a.Commands,
		Queries:        a.Queries,
		Files:          a.Files,
		Validator:      jwttoken.NewJWTServiceAdapter(tokens),
		Logger:         log,
		Metrics:        a.Metrics,
		Gatherer:       a.Registry,
		RequestTimeout: cfg.Server.RequestTimeout,
		HealthChecks:   a.Health,
	})
	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening",
			"addr", cfg.Server.Addr,
			"database", cfg.Database.Driver,
			"commands", len(a.Commands.Names()),
			"queries", len(a.Queries.Names()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
