// Package person resolves matricules against the person directory.
package person

import (
	"context"
	"sync"

	"parcours/internal/ports"
	"parcours/pkg/platform/sentinel"
)

// InMemoryDirectory is a fixed directory used in tests and local runs.
type InMemoryDirectory struct {
	mu     sync.RWMutex
	people map[string]ports.Person
}

func NewInMemoryDirectory(people ...ports.Person) *InMemoryDirectory {
	d := &InMemoryDirectory{people: make(map[string]ports.Person, len(people))}
	for _, p := range people {
		d.people[p.Matricule] = p
	}
	return d
}

func (d *InMemoryDirectory) Put(p ports.Person) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.people[p.Matricule] = p
}

func (d *InMemoryDirectory) Get(_ context.Context, matricule string) (*ports.Person, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.people[matricule]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}
