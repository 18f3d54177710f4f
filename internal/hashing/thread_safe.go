package hashing

import (
	"sync"
	"sync/atomic"
)

type perftKey struct {
	hash  uint64
	depth int
}

// PerftTable memoises subtree node counts by position hash and depth.
// It is safe for concurrent use by perft workers.
type PerftTable struct {
	mu          sync.RWMutex
	entries     map[perftKey]uint64
	maxCapacity int
	hits        atomic.Int64
}

// NewPerftTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PerftTable{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for hash at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[perftKey{hash: hash, depth: depth}]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
	}
	return nodes, ok
}

// Store records the node count for hash at depth. Once the table is full
// new entries are dropped.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := perftKey{hash: hash, depth: depth}
	if _, ok := t.entries[key]; !ok && t.isFullLocked() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Hits returns how many lookups succeeded.
func (t *PerftTable) Hits() int64 {
	return t.hits.Load()
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFullLocked()
}

func (t *PerftTable) isFullLocked() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
