package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.Mutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// Lookup implements Cache.
func (t *ThreadSafeTable) Lookup(key uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key, depth)
}

// Store implements Cache.
func (t *ThreadSafeTable) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}
