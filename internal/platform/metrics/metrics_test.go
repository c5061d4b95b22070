package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe("SubmitConfirmationPaper", "ok", 10*time.Millisecond)
	m.Observe("SubmitConfirmationPaper", "ok", 20*time.Millisecond)
	m.Observe("SubmitConfirmationPaper", "precondition", time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Messages.WithLabelValues("SubmitConfirmationPaper", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Messages.WithLabelValues("SubmitConfirmationPaper", "precondition")), 0)
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRequest("/api/v1/commands/{name}", http.MethodPost, http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("x", "ok", time.Second)
		m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Second)
	})
	assert.NotPanics(t, func() {
		(&Metrics{}).ObserveRequest("/", http.MethodGet, http.StatusOK, time.Second)
	})
}
