// Package bus routes lifecycle commands and queries to their handler.
//
// Handlers are registered once per message type with Register. The bus keys
// them by MessageName and keeps a typed decoder next to each handler, so a
// message can be dispatched from its name and a JSON payload without
// reflection. Every error leaving the bus is a *domainerrors.Multiple.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"parcours/internal/lifecycle/commands"
	"parcours/internal/platform/metrics"
	dErrors "parcours/pkg/domain-errors"
	"parcours/pkg/requestcontext"
)

var (
	ErrUnknownMessage = dErrors.Define(dErrors.KindNotFound, "BUS-1",
		"Ce type de commande est inconnu.",
		"Unknown message type.")
	ErrMalformedMessage = dErrors.Define(dErrors.KindInvalidValue, "BUS-2",
		"Le contenu de la commande est mal formé.",
		"The message payload is malformed.")
)

// Handler handles one message type.
type Handler[C commands.Message, R any] func(ctx context.Context, msg C) (R, error)

type route struct {
	decode func(payload []byte) (commands.Message, error)
	invoke func(ctx context.Context, msg commands.Message) (any, error)
}

type Bus struct {
	routes  map[string]route
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Bus)

func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) { b.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Bus) { b.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(b *Bus) { b.tracer = t }
}

func New(opts ...Option) *Bus {
	b := &Bus{
		routes: make(map[string]route),
		logger: slog.Default(),
		tracer: otel.Tracer("parcours/lifecycle/bus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register binds h to the message type C. Registering a name twice panics.
func Register[C commands.Message, R any](b *Bus, h Handler[C, R]) {
	var zero C
	name := zero.MessageName()
	if _, exists := b.routes[name]; exists {
		panic(fmt.Sprintf("bus: handler for %q registered twice", name))
	}
	b.routes[name] = route{
		decode: func(payload []byte) (commands.Message, error) {
			var msg C
			if len(payload) > 0 {
				if err := json.Unmarshal(payload, &msg); err != nil {
					return nil, err
				}
			}
			return msg, nil
		},
		invoke: func(ctx context.Context, msg commands.Message) (any, error) {
			typed, ok := msg.(C)
			if !ok {
				return nil, ErrMalformedMessage.With(fmt.Sprintf("%T is not %s", msg, name))
			}
			return h(ctx, typed)
		},
	}
}

// Names lists the registered message names in lexical order.
func (b *Bus) Names() []string {
	out := make([]string, 0, len(b.routes))
	for name := range b.routes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatch decodes payload as the message registered under name and executes it.
func (b *Bus) Dispatch(ctx context.Context, name string, payload []byte) (any, error) {
	r, ok := b.routes[name]
	if !ok {
		return nil, dErrors.AsMultiple(ErrUnknownMessage.With(name))
	}
	msg, err := r.decode(payload)
	if err != nil {
		return nil, dErrors.AsMultiple(ErrMalformedMessage.Wrap(err))
	}
	return b.execute(ctx, name, r, msg)
}

// Execute runs an already typed message.
func (b *Bus) Execute(ctx context.Context, msg commands.Message) (any, error) {
	name := msg.MessageName()
	r, ok := b.routes[name]
	if !ok {
		return nil, dErrors.AsMultiple(ErrUnknownMessage.With(name))
	}
	return b.execute(ctx, name, r, msg)
}

func (b *Bus) execute(ctx context.Context, name string, r route, msg commands.Message) (any, error) {
	ctx, span := b.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("parcours.message", name),
		attribute.String("parcours.request_id", requestcontext.RequestID(ctx)),
	))
	defer span.End()

	start := time.Now()
	result, err := r.invoke(ctx, msg)
	if err == nil {
		b.metrics.Observe(name, "ok", time.Since(start))
		return result, nil
	}

	multiple := dErrors.AsMultiple(err)
	kind := dErrors.KindOf(multiple)
	b.metrics.Observe(name, string(kind), time.Since(start))
	span.RecordError(multiple)
	span.SetStatus(codes.Error, string(kind))
	if kind == dErrors.KindInternal {
		b.logger.ErrorContext(ctx, "message failed",
			"message", name,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	} else {
		b.logger.InfoContext(ctx, "message rejected",
			"message", name,
			"codes", multiple.Codes(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return nil, multiple
}
