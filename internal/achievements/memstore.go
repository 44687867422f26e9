package achievements

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by the engine tests. Failure injection
// covers the degraded paths a real database exercises rarely.
type MemStore struct {
	mu      sync.Mutex
	records map[string]map[string]Record // userID -> achievementID -> record

	// FailLoad and FailSave force the next calls to return the given error.
	FailLoad error
	FailSave error

	saveCount int
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]map[string]Record)}
}

func (s *MemStore) Load(ctx context.Context, userID string) (map[string]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailLoad != nil {
		return nil, s.FailLoad
	}

	out := make(map[string]Record, len(s.records[userID]))
	for id, rec := range s.records[userID] {
		out[id] = rec
	}
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, userID, achievementID string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSave != nil {
		return s.FailSave
	}

	if s.records[userID] == nil {
		s.records[userID] = make(map[string]Record)
	}
	s.records[userID][achievementID] = rec
	s.saveCount++
	return nil
}

// Seed places a record directly, bypassing failure injection.
func (s *MemStore) Seed(userID, achievementID string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records[userID] == nil {
		s.records[userID] = make(map[string]Record)
	}
	s.records[userID][achievementID] = rec
}

// Get returns the stored record, if any.
func (s *MemStore) Get(userID, achievementID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID][achievementID]
	return rec, ok
}

// SaveCount returns how many successful saves have happened.
func (s *MemStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCount
}
