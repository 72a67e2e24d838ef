// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"time"

	"github.com/Aurora-NEW/gcli2api/domain/usage"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Usage Ports
// -----------------------------------------------------------------------------

// UsageTracker retains a bounded window of usage events. When the capacity is
// reached the oldest event is evicted first.
type UsageTracker interface {
	// Record appends one event, evicting the oldest if the tracker is full.
	// It never fails.
	Record(event usage.Event)

	// Reset removes events. An empty source clears everything; a source that
	// trims to empty removes nothing; otherwise only events from that source
	// are removed. Returns the number of events removed.
	Reset(source string) int

	// Events returns a copy of the retained events, oldest first. Callers may
	// aggregate over the copy without holding any tracker lock.
	Events() []usage.Event

	// Len returns the number of retained events.
	Len() int
}

// -----------------------------------------------------------------------------
// Hasher Port
// -----------------------------------------------------------------------------

// Hasher provides password/key hashing.
type Hasher interface {
	// Hash generates a hash from a plaintext value.
	Hash(plaintext string) ([]byte, error)

	// Compare checks if plaintext matches hash.
	Compare(hash []byte, plaintext string) bool
}
