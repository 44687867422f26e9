package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriterCoalescesBurstsToLatestValue(t *testing.T) {
	store := NewMemStore()
	w := newWriter(store, "user1")
	defer w.close()

	for i := 1; i <= 50; i++ {
		w.enqueue("grind", Record{Progress: i})
	}

	assert.Eventually(t, func() bool {
		saved, ok := store.Get("user1", "grind")
		return ok && saved.Progress == 50
	}, 2*time.Second, 10*time.Millisecond)

	// Coalescing means far fewer saves than enqueues.
	assert.LessOrEqual(t, store.SaveCount(), 50)
}

func TestWriterAfterCloseDropsEnqueues(t *testing.T) {
	store := NewMemStore()
	w := newWriter(store, "user1")
	w.close()

	w.enqueue("a", Record{Progress: 1})
	time.Sleep(50 * time.Millisecond)

	_, ok := store.Get("user1", "a")
	assert.False(t, ok)
}

func TestWriterSerializesPerKey(t *testing.T) {
	store := NewMemStore()
	w := newWriter(store, "user1")
	defer w.close()

	w.enqueue("a", Record{Progress: 1})
	w.enqueue("b", Record{Progress: 2})
	w.enqueue("a", Record{Progress: 3})

	assert.Eventually(t, func() bool {
		a, okA := store.Get("user1", "a")
		b, okB := store.Get("user1", "b")
		return okA && okB && a.Progress == 3 && b.Progress == 2
	}, 2*time.Second, 10*time.Millisecond)
}
