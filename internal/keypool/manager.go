// Package keypool tracks a rotating pool of API credentials. Rotation happens
// when a key reaches its per-key call quota or when the caller reports a
// failed call.
package keypool

import (
	"sync"

	"github.com/joseph-ayodele/catalog-normalizer/internal/common"
)

// DefaultMaxCallsPerKey is the per-key quota used when none is configured.
const DefaultMaxCallsPerKey = 15

// Manager owns the rotation cursor over a fixed credential pool. It performs
// no I/O; callers report call outcomes and read the active key. All methods
// are safe for concurrent use.
type Manager struct {
	mu             sync.Mutex
	keys           []string
	maxCallsPerKey int
	current        int
	callCount      int
	totalCalls     int
}

// Status is a point-in-time snapshot of rotation state.
type Status struct {
	CurrentKeyNumber    int
	CallsWithCurrentKey int
	MaxCallsPerKey      int
	TotalCalls          int
	TotalKeys           int
}

// NewManager builds a manager over the given keys. maxCallsPerKey <= 0 falls
// back to DefaultMaxCallsPerKey.
func NewManager(keys []string, maxCallsPerKey int) (*Manager, error) {
	if len(keys) == 0 {
		return nil, common.NewAppError("KEYPOOL_ERROR", "at least one API key must be provided", common.ErrInvalidInput)
	}
	if maxCallsPerKey <= 0 {
		maxCallsPerKey = DefaultMaxCallsPerKey
	}
	return &Manager{keys: keys, maxCallsPerKey: maxCallsPerKey}, nil
}

// Current returns the active credential.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[m.current]
}

// CurrentIndex returns the 1-based position of the active credential.
func (m *Manager) CurrentIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current + 1
}

// Len returns the pool size.
func (m *Manager) Len() int {
	return len(m.keys)
}

// RecordSuccess counts one successful call against the active key and rotates
// once the key reaches its quota.
func (m *Manager) RecordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.totalCalls++
	if m.callCount >= m.maxCallsPerKey {
		m.rotateLocked()
	}
}

// RecordFailure rotates to the next key regardless of the quota counter.
func (m *Manager) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotateLocked()
}

func (m *Manager) rotateLocked() {
	m.current = (m.current + 1) % len(m.keys)
	m.callCount = 0
}

// Status returns a snapshot of the rotation counters.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		CurrentKeyNumber:    m.current + 1,
		CallsWithCurrentKey: m.callCount,
		MaxCallsPerKey:      m.maxCallsPerKey,
		TotalCalls:          m.totalCalls,
		TotalKeys:           len(m.keys),
	}
}
