package achievements

import (
	"context"
	"sync"
	"time"

	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

const (
	writeAttempts = 3
	writeBackoff  = 200 * time.Millisecond
)

// writer flushes dirty records to the store in the background. Bursts for the
// same achievement coalesce to the latest value, and a single goroutine
// drains the queue, so writes per key are serialized and last-value-wins.
//
// Callers never block on persistence; a record that cannot be saved after
// retries is logged and dropped, leaving the in-memory state authoritative.
type writer struct {
	store  Store
	userID string

	mu      sync.Mutex
	pending map[string]Record
	closed  bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func newWriter(store Store, userID string) *writer {
	w := &writer{
		store:   store,
		userID:  userID,
		pending: make(map[string]Record),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// enqueue marks a record dirty. A value already pending for the same id is
// replaced; it was never going to be observed by anyone.
func (w *writer) enqueue(achievementID string, rec Record) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending[achievementID] = rec
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// close stops the flusher. Pending or in-flight writes may be abandoned;
// progress records are advisory state, not transactions, so this is fine on
// logout.
func (w *writer) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	w.wg.Wait()
}

func (w *writer) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case <-w.wake:
			w.drain()
		}
	}
}

func (w *writer) drain() {
	for {
		id, rec, ok := w.next()
		if !ok {
			return
		}
		w.save(id, rec)

		select {
		case <-w.done:
			return
		default:
		}
	}
}

// next pops one dirty record.
func (w *writer) next() (string, Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, rec := range w.pending {
		delete(w.pending, id)
		return id, rec, true
	}
	return "", Record{}, false
}

// save writes one record with bounded retries. A newer value queued for the
// same id during a retry supersedes this one, so the retry is abandoned.
func (w *writer) save(achievementID string, rec Record) {
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		err := w.store.Save(context.Background(), w.userID, achievementID, rec)
		if err == nil {
			return
		}

		logger.Warn().
			Err(err).
			Str("user_id", w.userID).
			Str("achievement_id", achievementID).
			Int("attempt", attempt).
			Msg("Progress write failed")

		if attempt == writeAttempts {
			logger.Error().
				Str("user_id", w.userID).
				Str("achievement_id", achievementID).
				Msg("Dropping progress write after retries; in-memory state stays authoritative")
			return
		}

		select {
		case <-w.done:
			return
		case <-time.After(writeBackoff << (attempt - 1)):
		}

		w.mu.Lock()
		_, superseded := w.pending[achievementID]
		w.mu.Unlock()
		if superseded {
			return
		}
	}
}

// idle reports whether the queue is empty. Used by tests to wait for
// persistence without sleeping blindly.
func (w *writer) idle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending) == 0
}
