// Package app assembles the engine from configuration: record stores,
// upstream adapters, side-effect sinks and the command and query buses.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/twmb/franz-go/pkg/kgo"

	"parcours/internal/adapters/canvas"
	"parcours/internal/adapters/filestore"
	"parcours/internal/adapters/fixtures"
	"parcours/internal/adapters/mail"
	"parcours/internal/adapters/person"
	"parcours/internal/adapters/signature"
	admstore "parcours/internal/admissibility/store"
	confstore "parcours/internal/confirmation/store"
	diststore "parcours/internal/distribution/store"
	doctstore "parcours/internal/doctorate/store"
	docstore "parcours/internal/document/store"
	"parcours/internal/history"
	histstore "parcours/internal/history/store"
	jurystore "parcours/internal/jury/store"
	"parcours/internal/lifecycle/bus"
	"parcours/internal/lifecycle/cddconfig"
	"parcours/internal/lifecycle/service"
	"parcours/internal/notification"
	"parcours/internal/platform/config"
	"parcours/internal/platform/kafka"
	"parcours/internal/platform/memory"
	"parcours/internal/platform/metrics"
	"parcours/internal/platform/postgres"
	"parcours/internal/platform/redis"
	"parcours/internal/ports"
	pdstore "parcours/internal/privatedefense/store"
	supstore "parcours/internal/supervision/store"
	httptransport "parcours/internal/transport/http"
)

// App is the assembled engine. Close releases every connection it opened.
type App struct {
	Commands *bus.Bus
	Queries  *bus.Bus
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Files    ports.FileService
	Health   map[string]httptransport.HealthCheck

	logger  *slog.Logger
	closers []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) onClose(fn func()) { a.closers = append(a.closers, fn) }

func (a *App) closeLogged(name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			a.logger.Warn("close failed", "component", name, "error", err)
		}
	}
}

// Build wires stores, adapters and the two buses from cfg. The memory driver
// and empty Kafka, Redis and S3 settings give a self-contained engine.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (_ *App, err error) {
	a := &App{
		Registry: prometheus.NewRegistry(),
		Health:   map[string]httptransport.HealthCheck{},
		logger:   log,
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.Metrics = metrics.New(a.Registry)

	location, err := time.LoadLocation(cfg.Lifecycle.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	cdd, err := cddconfig.Load(cfg.Lifecycle.CddConfigPath)
	if err != nil {
		return nil, err
	}

	stores, histStore, err := a.buildStores(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	var producer *kgo.Client
	if len(cfg.Kafka.Brokers) > 0 {
		kcfg := kafka.Config{
			Brokers:           cfg.Kafka.Brokers,
			ClientID:          cfg.Kafka.ClientID,
			Partitions:        cfg.Kafka.Partitions,
			ReplicationFactor: cfg.Kafka.ReplicationFactor,
		}
		producer, err = kafka.NewClient(ctx, kcfg)
		if err != nil {
			return nil, err
		}
		a.onClose(producer.Close)
		if err := kafka.EnsureTopics(ctx, producer, kcfg, cfg.Kafka.HistoryTopic, cfg.Kafka.MailTopic); err != nil {
			return nil, err
		}
		a.Health["kafka"] = producer.Ping
	}

	recorderOpts := []history.Option{history.WithLogger(log), history.WithRegisterer(a.Registry)}
	if producer != nil {
		sink := history.NewKafkaSink(producer, cfg.Kafka.HistoryTopic, history.WithSinkLogger(log))
		a.onClose(sink.Close)
		recorderOpts = append(recorderOpts, history.WithSink(sink))
	}
	recorder := history.NewRecorder(histStore, recorderOpts...)

	notifier, err := buildNotifier(cfg, producer, a.Registry, log)
	if err != nil {
		return nil, err
	}

	a.Files, err = a.buildFiles(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}

	propositions, directory, err := fixtures.Load(cfg.Lifecycle.FixturesPath)
	if err != nil {
		return nil, err
	}
	var people ports.PersonDirectory = directory
	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		a.onClose(a.closeLogged("redis", rc))
		a.Health["redis"] = rc.Health
		people = person.NewRedisCache(directory, rc.Client, cfg.Redis.PersonTTL, person.WithCacheLogger(log))
	}

	svc := service.New(stores, service.External{
		Propositions: propositions,
		People:       people,
		Signatures:   signature.NewInMemoryService(),
		Canvas:       canvas.NewRenderer(a.Files),
	}, recorder, notifier,
		service.WithLogger(log),
		service.WithCddConfig(cdd),
		service.WithLocation(location),
	)

	a.Commands = bus.New(bus.WithLogger(log), bus.WithMetrics(a.Metrics))
	service.Register(a.Commands, svc)
	a.Queries = bus.New(bus.WithLogger(log), bus.WithMetrics(a.Metrics))
	service.RegisterQueries(a.Queries, svc)
	return a, nil
}

func (a *App) buildStores(ctx context.Context, cfg config.DatabaseConfig) (service.Stores, history.Store, error) {
	if cfg.Driver != "postgres" {
		return service.Stores{
			Tx:              memory.NewTx(),
			Doctorates:      doctstore.NewInMemoryStore(),
			Confirmations:   confstore.NewInMemoryStore(),
			PrivateDefenses: pdstore.NewInMemoryStore(),
			Admissibilities: admstore.NewInMemoryStore(),
			Juries:          jurystore.NewInMemoryStore(),
			Supervision:     supstore.NewInMemoryStore(),
			Distributions:   diststore.NewInMemoryStore(),
			Documents:       docstore.NewInMemoryStore(),
		}, histstore.NewInMemoryStore(), nil
	}

	db, err := postgres.Open(ctx, cfg.DSN, postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return service.Stores{}, nil, err
	}
	a.onClose(a.closeLogged("postgres", db))
	a.Health["postgres"] = db.PingContext
	return postgresStores(db), histstore.NewPostgres(db), nil
}

func postgresStores(db *sql.DB) service.Stores {
	return service.Stores{
		Tx:              postgres.NewTx(db),
		Doctorates:      doctstore.NewPostgres(db),
		Confirmations:   confstore.NewPostgres(db),
		PrivateDefenses: pdstore.NewPostgres(db),
		Admissibilities: admstore.NewPostgres(db),
		Juries:          jurystore.NewPostgres(db),
		Supervision:     supstore.NewPostgres(db),
		Distributions:   diststore.NewPostgres(db),
		Documents:       docstore.NewPostgres(db),
	}
}

func (a *App) buildFiles(ctx context.Context, cfg config.S3Config) (ports.FileService, error) {
	if cfg.Bucket == "" {
		return filestore.NewInMemoryStore(), nil
	}
	client, err := filestore.NewClient(ctx, filestore.ClientConfig{
		Region:         cfg.Region,
		Endpoint:       cfg.Endpoint,
		ForcePathStyle: cfg.ForcePathStyle,
	})
	if err != nil {
		return nil, err
	}
	return filestore.NewS3Store(client, cfg.Bucket), nil
}

func buildNotifier(cfg *config.Config, producer *kgo.Client, reg prometheus.Registerer, log *slog.Logger) (*notification.Notifier, error) {
	catalog, err := mail.DefaultCatalog()
	if cfg.Lifecycle.MailTemplates != "" {
		catalog, err = mail.LoadCatalog(cfg.Lifecycle.MailTemplates)
	}
	if err != nil {
		return nil, err
	}
	var sender mail.Sender = mail.NewLogSender(log)
	if producer != nil {
		sender = mail.NewQueueSender(producer, cfg.Kafka.MailTopic)
	}
	return notification.New(mail.NewMailer(catalog, sender),
		notification.WithLogger(log),
		notification.WithRegisterer(reg),
	), nil
}
