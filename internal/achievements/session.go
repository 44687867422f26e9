package achievements

import (
	"sync"
	"time"

	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

// xpPerLevel is the canonical level step. Every surface (profile, summary,
// leaderboard) derives levels through Level; there is no second formula.
const xpPerLevel = 1000

// Level derives the tier for a total XP value.
func Level(totalXP int) int {
	return totalXP/xpPerLevel + 1
}

// Unlock describes one achievement crossing its threshold. Emitted exactly
// once per achievement per user, at the moment of the transition; hydration
// never replays it.
type Unlock struct {
	UserID     string
	Definition Definition
	UnlockedAt time.Time
	TotalXP    int
	Level      int
}

// UnlockFunc observes unlock transitions. It is called synchronously from
// Increment while the session lock is released, so it may call back into the
// session but should not block for long.
type UnlockFunc func(Unlock)

// Session is the in-memory achievement state of one authenticated user.
// It is created by the Manager at login, fed by trigger call sites through
// Increment, and discarded at logout. All arithmetic happens here; the store
// only ever receives finished absolute values.
type Session struct {
	userID  string
	catalog *Catalog
	writer  *writer

	onUnlock UnlockFunc
	now      func() time.Time

	mu         sync.Mutex
	progress   map[string]int
	unlocked   map[string]bool
	unlockedAt map[string]time.Time
	totalXP    int
}

func newSession(userID string, catalog *Catalog, store Store, onUnlock UnlockFunc) *Session {
	return &Session{
		userID:     userID,
		catalog:    catalog,
		writer:     newWriter(store, userID),
		onUnlock:   onUnlock,
		now:        time.Now,
		progress:   make(map[string]int),
		unlocked:   make(map[string]bool),
		unlockedAt: make(map[string]time.Time),
	}
}

// hydrate installs persisted records without emitting unlock events. Records
// for ids no longer in the catalog are ignored; progress beyond the current
// target is clamped.
func (s *Session) hydrate(records map[string]Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, rec := range records {
		def, ok := s.catalog.Lookup(id)
		if !ok {
			logger.Warn().
				Str("user_id", s.userID).
				Str("achievement_id", id).
				Msg("Stored progress references unknown achievement, skipping")
			continue
		}

		p := rec.Progress
		if p < 0 {
			p = 0
		}
		if p > def.MaxProgress {
			p = def.MaxProgress
		}
		s.progress[id] = p

		if rec.Unlocked {
			s.unlocked[id] = true
			if rec.UnlockedAt != nil {
				s.unlockedAt[id] = *rec.UnlockedAt
			}
			s.totalXP += def.XP
		}
	}
}

// Increment advances one achievement by amount (default stimulus is 1).
// Unknown ids and already-unlocked achievements are cheap no-ops; progress is
// clamped to the target; crossing the threshold latches the unlock, grants
// the XP exactly once and schedules the persistence write.
func (s *Session) Increment(achievementID string, amount int) {
	if amount <= 0 {
		return
	}

	def, ok := s.catalog.Lookup(achievementID)
	if !ok {
		logger.Warn().
			Str("user_id", s.userID).
			Str("achievement_id", achievementID).
			Msg("Trigger for unknown achievement ignored")
		return
	}

	s.mu.Lock()

	if s.unlocked[achievementID] {
		s.mu.Unlock()
		return
	}

	newProgress := s.progress[achievementID] + amount
	if newProgress > def.MaxProgress {
		newProgress = def.MaxProgress
	}
	s.progress[achievementID] = newProgress

	var event *Unlock
	if newProgress >= def.MaxProgress {
		when := s.now()
		s.unlocked[achievementID] = true
		s.unlockedAt[achievementID] = when
		s.totalXP += def.XP
		event = &Unlock{
			UserID:     s.userID,
			Definition: def,
			UnlockedAt: when,
			TotalXP:    s.totalXP,
			Level:      Level(s.totalXP),
		}
	}

	rec := Record{Progress: newProgress, Unlocked: s.unlocked[achievementID]}
	if event != nil {
		rec.UnlockedAt = &event.UnlockedAt
	}
	s.mu.Unlock()

	s.writer.enqueue(achievementID, rec)

	if event != nil && s.onUnlock != nil {
		s.onUnlock(*event)
	}
}

// Achievement returns the current in-memory record for one id.
func (s *Session) Achievement(achievementID string) (Record, bool) {
	if _, ok := s.catalog.Lookup(achievementID); !ok {
		return Record{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		Progress: s.progress[achievementID],
		Unlocked: s.unlocked[achievementID],
	}
	if at, ok := s.unlockedAt[achievementID]; ok {
		t := at
		rec.UnlockedAt = &t
	}
	return rec, true
}

// State is a consistent snapshot of the session for the UI.
type State struct {
	Progress      map[string]int       `json:"progress"`
	Unlocked      map[string]bool      `json:"unlocked"`
	UnlockedAt    map[string]time.Time `json:"unlockedAt"`
	TotalXP       int                  `json:"totalXP"`
	Level         int                  `json:"level"`
	UnlockedCount int                  `json:"unlockedCount"`
}

// Snapshot copies the whole session state under one lock acquisition.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Progress:   make(map[string]int, len(s.progress)),
		Unlocked:   make(map[string]bool, len(s.unlocked)),
		UnlockedAt: make(map[string]time.Time, len(s.unlockedAt)),
		TotalXP:    s.totalXP,
		Level:      Level(s.totalXP),
	}
	for id, p := range s.progress {
		st.Progress[id] = p
	}
	for id, u := range s.unlocked {
		st.Unlocked[id] = u
		if u {
			st.UnlockedCount++
		}
	}
	for id, at := range s.unlockedAt {
		st.UnlockedAt[id] = at
	}
	return st
}

// TotalXP returns the XP sum over unlocked achievements.
func (s *Session) TotalXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalXP
}

// Level returns the current derived level.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Level(s.totalXP)
}

// close stops the background writer. In-flight writes may be abandoned.
func (s *Session) close() {
	s.writer.close()
}
