package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/goleak"

	"parcours/internal/history"
	"parcours/internal/history/store"
	"parcours/pkg/domain"
	"parcours/pkg/requestcontext"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeProducer struct {
	mu      sync.Mutex
	records []*kgo.Record
	err     error
}

func (p *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	p.mu.Lock()
	defer p.mu.Unlock()
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		if p.err == nil {
			p.records = append(p.records, r)
		}
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return results
}

func (p *fakeProducer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records)
}

type failingStore struct{}

func (failingStore) Append(context.Context, history.Entry) error { return errors.New("db down") }
func (failingStore) ListByDoctorate(context.Context, domain.DoctorateID) ([]history.Entry, error) {
	return nil, nil
}

func TestRecorder_RecordsAndPublishes(t *testing.T) {
	producer := &fakeProducer{}
	sink := history.NewKafkaSink(producer, "parcours.history", history.WithFlushInterval(10*time.Millisecond))
	defer sink.Close()

	recorder := history.NewRecorder(store.NewInMemoryStore(), history.WithSink(sink))
	doctorateID := domain.DoctorateID(uuid.New())
	at := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(requestcontext.WithRequestID(context.Background(), "req-1"), at)

	recorder.Record(ctx, doctorateID, "Épreuve soumise", "Paper submitted", "Ada Lovelace",
		history.TagConfirmation, history.TagStatusChanged)

	entries, err := recorder.List(ctx, doctorateID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Paper submitted", entries[0].MessageEN)
	assert.Equal(t, "req-1", entries[0].RequestID)
	assert.True(t, entries[0].CreatedAt.Equal(at))
	assert.True(t, entries[0].HasTag(history.TagStatusChanged))

	require.Eventually(t, func() bool { return producer.count() == 1 }, time.Second, 5*time.Millisecond)
	var published history.Entry
	require.NoError(t, json.Unmarshal(producer.records[0].Value, &published))
	assert.Equal(t, entries[0].ID, published.ID)
	assert.Equal(t, doctorateID.String(), string(producer.records[0].Key))
}

func TestRecorder_SwallowsStoreFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := history.NewRecorder(failingStore{}, history.WithRegisterer(reg))

	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), domain.DoctorateID(uuid.New()), "fr", "en", "author")
	})
	count, err := testutil.GatherAndCount(reg, "parcours_history_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestKafkaSink_CloseFlushes(t *testing.T) {
	producer := &fakeProducer{}
	sink := history.NewKafkaSink(producer, "parcours.history", history.WithFlushInterval(time.Hour))
	for i := 0; i < 5; i++ {
		require.NoError(t, sink.Publish(context.Background(), history.Entry{DoctorateID: domain.DoctorateID(uuid.New())}))
	}
	sink.Close()
	sink.Close()
	assert.Equal(t, 5, producer.count())
}
