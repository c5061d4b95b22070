// Package memory provides the in-memory persistence primitives used by the
// memory stores: JSON-backed tables and a transaction runner that serializes
// handlers per aggregate and undoes their writes on failure.
package memory

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	dErrors "parcours/pkg/domain-errors"
)

// numShards spreads aggregates over independent locks.
const numShards = 64

const defaultTxTimeout = 5 * time.Second

type journalKey struct{}

// journal records undo operations for every table write made inside a transaction.
type journal struct {
	mu   sync.Mutex
	undo []func()
}

func (j *journal) record(f func()) {
	j.mu.Lock()
	j.undo = append(j.undo, f)
	j.mu.Unlock()
}

func (j *journal) rollback() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

// Tx runs handlers one at a time per aggregate key.
type Tx struct {
	shards  [numShards]sync.Mutex
	timeout time.Duration
}

func NewTx() *Tx {
	return &Tx{timeout: defaultTxTimeout}
}

// RunInTx holds the lock of key while fn runs. When fn fails every table
// write it made is undone, in reverse order.
func (t *Tx) RunInTx(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Internal(err, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	shard := &t.shards[hashKey(key)%numShards]
	shard.Lock()
	defer shard.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Internal(err, "transaction aborted: context cancelled")
	}

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		j.rollback()
		return err
	}
	return nil
}

func hashKey(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
