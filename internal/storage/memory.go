package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"financio/internal/core"
)

// MemoryStore keeps the ledger document in memory. It round-trips state
// through JSON on every Load/Save so callers see the same copy semantics
// and encoding behavior as the file store.
type MemoryStore struct {
	mu    sync.Mutex
	doc   []byte
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*core.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return core.NewState(), nil
	}
	var state core.State
	if err := json.Unmarshal(s.doc, &state); err != nil {
		return nil, fmt.Errorf("decode stored ledger: %w", err)
	}
	state.Normalize()
	return &state, nil
}

func (s *MemoryStore) Save(_ context.Context, state *core.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = data
	s.saves++
	return nil
}

// SaveCount reports how many times Save succeeded.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
