package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the lifecycle bus and its HTTP front.
type Metrics struct {
	Messages *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Requests *prometheus.HistogramVec
}

// New creates and registers the metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "parcours_messages_total",
			Help: "Commands and queries dispatched, by message and outcome",
		}, []string{"message", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parcours_message_duration_seconds",
			Help:    "Handler duration by message",
			Buckets: prometheus.DefBuckets,
		}, []string{"message"}),
		Requests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parcours_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern, method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// Observe records one dispatch of message. outcome is "ok" or an error kind.
func (m *Metrics) Observe(message, outcome string, elapsed time.Duration) {
	if m == nil || m.Messages == nil {
		return
	}
	m.Messages.WithLabelValues(message, outcome).Inc()
	m.Duration.WithLabelValues(message).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil || m.Requests == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
