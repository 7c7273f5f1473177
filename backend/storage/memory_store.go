package storage

import (
	"context"
	"encoding/json"
	"sync"

	"promtlearn/backend/models"
)

// MemoryProgressStore keeps progress in process memory. Used in tests and as
// the fallback when no Redis address is configured; progress then lasts only
// for the lifetime of the process.
type MemoryProgressStore struct {
	mu   sync.RWMutex
	data map[uint][]byte
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{data: make(map[uint][]byte)}
}

func (s *MemoryProgressStore) Load(ctx context.Context, userID uint) (*models.ProgressState, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var state models.ProgressState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	if state.CompletedLessonIDs == nil {
		state.CompletedLessonIDs = []int{}
	}
	return &state, nil
}

func (s *MemoryProgressStore) Save(ctx context.Context, userID uint, state *models.ProgressState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[userID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryProgressStore) Delete(ctx context.Context, userID uint) error {
	s.mu.Lock()
	delete(s.data, userID)
	s.mu.Unlock()
	return nil
}
