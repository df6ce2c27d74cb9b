// Package session ties browser sessions to persisted game states. Each
// session id maps to exactly one state; all mutation goes through the
// service so concurrent requests on one session serialize.
package session

import (
	"context"
	"sync"

	"github.com/DilerFeed/CodeEmpire/internal/model"
)

type Store interface {
	Load(ctx context.Context, id string) (*model.GameState, bool, error)
	Save(ctx context.Context, id string, s *model.GameState) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

// MemoryStore keeps states in memory (dev/test use). Hands out clones so
// callers never share maps with the stored state.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*model.GameState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*model.GameState)}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*model.GameState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[id]
	if !ok {
		return nil, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, s *model.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = s.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	return ids, nil
}
