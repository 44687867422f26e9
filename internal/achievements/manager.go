package achievements

import (
	"context"
	"sync"

	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

// Manager owns the achievement sessions of all signed-in users. It is
// constructed once in main and handed to the handlers that need it; there is
// no package-level instance.
type Manager struct {
	catalog  *Catalog
	store    Store
	onUnlock UnlockFunc

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(catalog *Catalog, store Store, onUnlock UnlockFunc) *Manager {
	return &Manager{
		catalog:  catalog,
		store:    store,
		onUnlock: onUnlock,
		sessions: make(map[string]*Session),
	}
}

// Catalog exposes the immutable definition table.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// BeginSession hydrates (or returns) the session for userID. A failed bulk
// read falls back to zeroed state with a warning instead of blocking login;
// the user sees locked achievements until the next successful hydration.
// Hydration never emits unlock events.
func (m *Manager) BeginSession(ctx context.Context, userID string) *Session {
	m.mu.RLock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.RUnlock()
		return s
	}
	m.mu.RUnlock()

	records, err := m.store.Load(ctx, userID)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("user_id", userID).
			Msg("Achievement hydration failed, starting from locked defaults")
		records = nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another request may have hydrated while we were loading.
	if s, ok := m.sessions[userID]; ok {
		return s
	}

	s := newSession(userID, m.catalog, m.store, m.onUnlock)
	if len(records) > 0 {
		s.hydrate(records)
	}
	m.sessions[userID] = s
	return s
}

// Session returns the live session for userID if one exists.
func (m *Manager) Session(userID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// EndSession discards the in-memory state. No write-back happens here;
// logout is not a save point, anything unflushed was already queued by
// Increment and may or may not land.
func (m *Manager) EndSession(userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		s.close()
	}
}

// Close tears down every session (server shutdown).
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
