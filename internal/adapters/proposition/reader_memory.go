// Package proposition reads admission propositions from the upstream module.
package proposition

import (
	"context"
	"sync"

	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type InMemoryReader struct {
	mu           sync.RWMutex
	propositions map[domain.PropositionID]ports.Proposition
}

func NewInMemoryReader(props ...ports.Proposition) *InMemoryReader {
	r := &InMemoryReader{propositions: make(map[domain.PropositionID]ports.Proposition, len(props))}
	for _, p := range props {
		r.propositions[p.ID] = p
	}
	return r
}

func (r *InMemoryReader) Put(p ports.Proposition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.propositions[p.ID] = p
}

func (r *InMemoryReader) Get(_ context.Context, id domain.PropositionID) (*ports.Proposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.propositions[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}
