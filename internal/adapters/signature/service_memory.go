// Package signature hosts signature processes and their actors.
package signature

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

// InMemoryService keeps processes in memory. Actor order is insertion order.
type InMemoryService struct {
	mu        sync.Mutex
	processes map[string][]ports.SignatureActor
}

func NewInMemoryService() *InMemoryService {
	return &InMemoryService{processes: make(map[string][]ports.SignatureActor)}
}

func (s *InMemoryService) CreateProcess(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.processes[id] = nil
	return id, nil
}

func (s *InMemoryService) AddActor(_ context.Context, processID string, actor ports.SignatureActor) (domain.ActorID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	actors, ok := s.processes[processID]
	if !ok {
		return domain.ActorID{}, fmt.Errorf("process %s: %w", processID, sentinel.ErrNotFound)
	}
	if actor.ID.IsNil() {
		actor.ID = domain.NewActorID()
	}
	s.processes[processID] = append(actors, actor)
	return actor.ID, nil
}

func (s *InMemoryService) ListActors(_ context.Context, processID string) ([]ports.SignatureActor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	actors, ok := s.processes[processID]
	if !ok {
		return nil, fmt.Errorf("process %s: %w", processID, sentinel.ErrNotFound)
	}
	return slices.Clone(actors), nil
}

func (s *InMemoryService) RemoveActor(_ context.Context, processID string, actorID domain.ActorID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actors, ok := s.processes[processID]
	if !ok {
		return fmt.Errorf("process %s: %w", processID, sentinel.ErrNotFound)
	}
	i := slices.IndexFunc(actors, func(a ports.SignatureActor) bool { return a.ID == actorID })
	if i < 0 {
		return fmt.Errorf("actor %s: %w", actorID, sentinel.ErrNotFound)
	}
	s.processes[processID] = slices.Delete(actors, i, i+1)
	return nil
}

func (s *InMemoryService) EditExternalActor(_ context.Context, processID string, actor ports.SignatureActor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actors, ok := s.processes[processID]
	if !ok {
		return fmt.Errorf("process %s: %w", processID, sentinel.ErrNotFound)
	}
	i := slices.IndexFunc(actors, func(a ports.SignatureActor) bool { return a.ID == actor.ID })
	if i < 0 {
		return fmt.Errorf("actor %s: %w", actor.ID, sentinel.ErrNotFound)
	}
	if actors[i].Matricule != "" {
		return fmt.Errorf("actor %s is not external", actor.ID)
	}
	actors[i] = actor
	return nil
}
