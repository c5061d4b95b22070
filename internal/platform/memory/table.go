package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Table stores rows as JSON so that readers never share memory with writers
// and rows round-trip exactly like they do in the postgres stores.
type Table[K comparable, V any] struct {
	mu   sync.RWMutex
	rows map[K][]byte
	// order keeps insertion order for deterministic scans.
	order []K
}

func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{rows: make(map[K][]byte)}
}

// Get returns a copy of the row stored under k.
func (t *Table[K, V]) Get(k K) (*V, bool, error) {
	t.mu.RLock()
	raw, ok := t.rows[k]
	t.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("decode row: %w", err)
	}
	return &v, true, nil
}

// Put stores a copy of v under k, recording an undo step in the ambient transaction.
func (t *Table[K, V]) Put(ctx context.Context, k K, v *V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	t.mu.Lock()
	prev, existed := t.rows[k]
	t.rows[k] = raw
	if !existed {
		t.order = append(t.order, k)
	}
	t.mu.Unlock()

	if j := journalFrom(ctx); j != nil {
		j.record(func() { t.restore(k, prev, existed) })
	}
	return nil
}

// Delete removes k, recording an undo step in the ambient transaction.
func (t *Table[K, V]) Delete(ctx context.Context, k K) bool {
	t.mu.Lock()
	prev, existed := t.rows[k]
	if existed {
		delete(t.rows, k)
		t.removeOrder(k)
	}
	t.mu.Unlock()

	if existed {
		if j := journalFrom(ctx); j != nil {
			j.record(func() { t.restore(k, prev, true) })
		}
	}
	return existed
}

// Scan returns copies of every row accepted by keep, in insertion order.
func (t *Table[K, V]) Scan(keep func(*V) bool) ([]V, error) {
	t.mu.RLock()
	raws := make([][]byte, 0, len(t.order))
	for _, k := range t.order {
		raws = append(raws, t.rows[k])
	}
	t.mu.RUnlock()

	out := make([]V, 0)
	for _, raw := range raws {
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		if keep == nil || keep(&v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[K, V]) restore(k K, prev []byte, existed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, present := t.rows[k]
	if existed {
		t.rows[k] = prev
		if !present {
			t.order = append(t.order, k)
		}
		return
	}
	if present {
		delete(t.rows, k)
		t.removeOrder(k)
	}
}

func (t *Table[K, V]) removeOrder(k K) {
	for i, candidate := range t.order {
		if candidate == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
