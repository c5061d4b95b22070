package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer is the part of *kgo.Client used by the sink.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaSink publishes entries to a topic keyed by doctorate, from a
// background worker. Publish only buffers.
type KafkaSink struct {
	producer Producer
	topic    string
	buffer   *ringBuffer
	logger   *slog.Logger

	batchSize     int
	flushInterval time.Duration

	wake chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

type SinkOption func(*KafkaSink)

func WithSinkLogger(logger *slog.Logger) SinkOption {
	return func(s *KafkaSink) { s.logger = logger }
}

func WithBatchSize(n int) SinkOption {
	return func(s *KafkaSink) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func WithFlushInterval(d time.Duration) SinkOption {
	return func(s *KafkaSink) {
		if d > 0 {
			s.flushInterval = d
		}
	}
}

func WithBufferCapacity(n int) SinkOption {
	return func(s *KafkaSink) { s.buffer = newRingBuffer(n) }
}

// NewKafkaSink starts the publishing worker. Close stops it.
func NewKafkaSink(producer Producer, topic string, opts ...SinkOption) *KafkaSink {
	s := &KafkaSink{
		producer:      producer,
		topic:         topic,
		buffer:        newRingBuffer(0),
		logger:        slog.Default(),
		batchSize:     100,
		flushInterval: time.Second,
		wake:          make(chan struct{}, 1),
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *KafkaSink) Publish(_ context.Context, entry Entry) error {
	s.buffer.enqueue(entry)
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close flushes buffered entries and stops the worker.
func (s *KafkaSink) Close() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
}

// Dropped returns how many entries were evicted from a full buffer.
func (s *KafkaSink) Dropped() int64 { return s.buffer.droppedCount() }

func (s *KafkaSink) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			s.drain()
			return
		case <-s.wake:
			s.drain()
		case <-ticker.C:
			s.drain()
		}
	}
}

func (s *KafkaSink) drain() {
	for s.buffer.len() > 0 {
		s.flush(s.buffer.dequeueBatch(s.batchSize))
	}
}

func (s *KafkaSink) flush(batch []Entry) {
	records := make([]*kgo.Record, 0, len(batch))
	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			s.logger.Error("history entry not encodable", "doctorate_id", entry.DoctorateID.String(), "error", err)
			continue
		}
		records = append(records, &kgo.Record{
			Topic: s.topic,
			Key:   []byte(entry.DoctorateID.String()),
			Value: value,
		})
	}
	if len(records) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.producer.ProduceSync(ctx, records...).FirstErr(); err != nil {
		s.logger.Error("history batch not published", "topic", s.topic, "entries", len(records), "error", err)
	}
}
