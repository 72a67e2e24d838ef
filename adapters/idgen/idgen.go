// Package idgen provides ID generation implementations.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/Aurora-NEW/gcli2api/ports"
	"github.com/google/uuid"
)

// UUID generates random UUIDs. Used for panel session tokens.
type UUID struct{}

// New generates a new UUID v4.
func (UUID) New() string {
	return uuid.NewString()
}

// Ensure interface compliance.
var _ ports.IDGenerator = UUID{}

// Sequential generates prefix-1, prefix-2, ... for deterministic tests.
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential ID generator.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// New generates the next sequential ID.
func (s *Sequential) New() string {
	return s.prefix + "-" + strconv.FormatUint(s.counter.Add(1), 10)
}

// Reset rewinds the counter.
func (s *Sequential) Reset() {
	s.counter.Store(0)
}

// Ensure interface compliance.
var _ ports.IDGenerator = (*Sequential)(nil)
