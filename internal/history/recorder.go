package history

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

// Recorder appends entries to the store and fans them out to sinks.
type Recorder struct {
	store  Store
	sinks  []Sink
	logger *slog.Logger

	failures *prometheus.CounterVec
}

// Option configures the Recorder.
type Option func(*Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithSink adds a downstream sink.
func WithSink(sink Sink) Option {
	return func(r *Recorder) {
		r.sinks = append(r.sinks, sink)
	}
}

// WithRegisterer registers the failure counter.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Recorder) {
		r.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parcours_history_failures_total",
			Help: "History entries that could not be stored or published",
		}, []string{"target"})
		reg.MustRegister(r.failures)
	}
}

func NewRecorder(store Store, opts ...Option) *Recorder {
	r := &Recorder{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends a bilingual entry.
func (r *Recorder) Record(ctx context.Context, doctorateID domain.DoctorateID, fr, en, author string, tags ...string) {
	entry := Entry{
		ID:          domain.NewHistoryEntryID(),
		DoctorateID: doctorateID,
		MessageFR:   fr,
		MessageEN:   en,
		Author:      author,
		Tags:        tags,
		RequestID:   requestcontext.RequestID(ctx),
		CreatedAt:   requestcontext.Now(ctx),
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.fail(ctx, "store", entry, err)
		return
	}
	for _, sink := range r.sinks {
		if err := sink.Publish(ctx, entry); err != nil {
			r.fail(ctx, "sink", entry, err)
		}
	}
}

// List returns the entries of a doctorate, oldest first.
func (r *Recorder) List(ctx context.Context, doctorateID domain.DoctorateID) ([]Entry, error) {
	return r.store.ListByDoctorate(ctx, doctorateID)
}

func (r *Recorder) fail(ctx context.Context, target string, entry Entry, err error) {
	if r.failures != nil {
		r.failures.WithLabelValues(target).Inc()
	}
	r.logger.ErrorContext(ctx, "history entry not recorded",
		"target", target,
		"doctorate_id", entry.DoctorateID.String(),
		"tags", entry.Tags,
		"request_id", entry.RequestID,
		"error", err,
	)
}
