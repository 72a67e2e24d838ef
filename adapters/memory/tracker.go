// Package memory provides in-memory data store implementations.
package memory

import (
	"strings"
	"sync"

	"github.com/Aurora-NEW/gcli2api/domain/usage"
	"github.com/Aurora-NEW/gcli2api/ports"
)

// DefaultCapacity bounds the tracker when no capacity is configured.
const DefaultCapacity = 50000

// Tracker is a bounded in-memory implementation of ports.UsageTracker.
// Events live in a ring buffer: once full, each Record overwrites the oldest
// event in O(1). The buffer grows lazily up to its capacity, so an idle
// tracker costs almost nothing.
type Tracker struct {
	mu       sync.Mutex
	buf      []usage.Event
	head     int // index of the oldest event; nonzero only when buf is full
	capacity int
	evicted  uint64
}

// NewTracker creates a tracker retaining at most capacity events.
// Non-positive capacities fall back to DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{capacity: capacity}
}

// Record appends one event, evicting the oldest if the tracker is full.
func (t *Tracker) Record(e usage.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.buf) < t.capacity {
		t.buf = append(t.buf, e)
		return
	}
	t.buf[t.head] = e
	t.head = (t.head + 1) % t.capacity
	t.evicted++
}

// Reset removes events and returns how many were removed. An empty source
// clears everything; a source that trims to empty removes nothing; otherwise
// only events from the trimmed source are removed.
func (t *Tracker) Reset(source string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if source == "" {
		removed := len(t.buf)
		t.buf = nil
		t.head = 0
		return removed
	}

	target := strings.TrimSpace(source)
	if target == "" {
		return 0
	}

	before := len(t.buf)
	kept := make([]usage.Event, 0, before)
	for i := 0; i < before; i++ {
		e := t.buf[(t.head+i)%before]
		if e.Source != target {
			kept = append(kept, e)
		}
	}
	t.buf = kept
	t.head = 0
	return before - len(kept)
}

// Events returns a copy of the retained events, oldest first.
func (t *Tracker) Events() []usage.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]usage.Event, 0, len(t.buf))
	out = append(out, t.buf[t.head:]...)
	out = append(out, t.buf[:t.head]...)
	return out
}

// Len returns the number of retained events.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buf)
}

// Capacity returns the maximum number of retained events.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Evicted returns how many events have been overwritten since construction.
func (t *Tracker) Evicted() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.evicted
}

// Ensure interface compliance.
var _ ports.UsageTracker = (*Tracker)(nil)
