package hashing

// Cache stores subtree node counts by position key and depth.
type Cache interface {
	Lookup(key uint64, depth int) (uint64, bool)
	Store(key uint64, depth int, nodes uint64)
}

type tableKey struct {
	key   uint64
	depth int
}

// Table is a transposition table of perft counts. It is not safe for
// concurrent use; see ThreadSafeTable.
type Table struct {
	entries     map[tableKey]uint64
	maxCapacity int // 0 = unlimited
	hits        int
}

// NewTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for key at depth.
func (t *Table) Lookup(key uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{key, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records a count. Once the table is full new entries are dropped.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	k := tableKey{key, depth}
	if _, ok := t.entries[k]; !ok && t.IsFull() {
		return
	}
	t.entries[k] = nodes
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity.
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
}
