package achievements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginSessionIsIdempotentPerUser(t *testing.T) {
	m := NewManager(testCatalog(t), NewMemStore(), nil)
	defer m.Close()

	s1 := m.BeginSession(context.Background(), "user1")
	s2 := m.BeginSession(context.Background(), "user1")
	assert.Same(t, s1, s2)

	other := m.BeginSession(context.Background(), "user2")
	assert.NotSame(t, s1, other)
}

func TestBeginSessionFallsBackOnHydrationFailure(t *testing.T) {
	store := NewMemStore()
	store.Seed("user1", "a", Record{Progress: 1, Unlocked: true})
	store.FailLoad = errors.New("store unreachable")

	m := NewManager(testCatalog(t), store, nil)
	defer m.Close()

	// Login must not block on a broken store; the user starts from locked
	// defaults instead.
	s := m.BeginSession(context.Background(), "user1")
	assert.Equal(t, 0, s.TotalXP())
	r, _ := s.Achievement("a")
	assert.False(t, r.Unlocked)
}

func TestEndSessionDiscardsStateWithoutWriteBack(t *testing.T) {
	store := NewMemStore()
	m := NewManager(testCatalog(t), store, nil)
	defer m.Close()

	s := m.BeginSession(context.Background(), "user1")
	s.Increment("a", 1)

	assert.Eventually(t, func() bool {
		saved, ok := store.Get("user1", "a")
		return ok && saved.Unlocked
	}, 2*time.Second, 10*time.Millisecond)

	before := store.SaveCount()
	m.EndSession("user1")
	assert.Equal(t, before, store.SaveCount())

	_, ok := m.Session("user1")
	assert.False(t, ok)

	// A fresh login re-hydrates from the store.
	s2 := m.BeginSession(context.Background(), "user1")
	require.NotSame(t, s, s2)
	assert.Equal(t, 10, s2.TotalXP())
}

func TestUnlockCallbackReceivesRunningTotals(t *testing.T) {
	store := NewMemStore()
	rec := &unlockRecorder{}
	m := NewManager(testCatalog(t), store, rec.record)
	defer m.Close()

	s := m.BeginSession(context.Background(), "user1")
	s.Increment("a", 1)
	s.Increment("b", 1)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "user1", rec.events[0].UserID)
	assert.Equal(t, 10, rec.events[0].TotalXP)
	assert.Equal(t, 30, rec.events[1].TotalXP)
}
