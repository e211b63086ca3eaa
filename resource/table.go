package resource

import (
	"sync"
)

// Handle is an opaque reference to a resource in a table.
// Handle 0 is reserved and always invalid.
type Handle uint64

// Dropper is optionally implemented by resource values that need cleanup.
type Dropper interface {
	Drop()
}

type entry struct {
	value  any
	typeID uint32
}

// Table maps integer handles to Go values for callers that cannot hold Go
// pointers. Handles are allocated from a monotonic counter and never reused,
// so a stale handle fails cleanly instead of aliasing a newer resource.
//
// All methods are safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[Handle]entry
	next    Handle
	closed  bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]entry),
		next:    1,
	}
}

// Insert adds a value and returns its handle. A closed table returns 0.
func (t *Table) Insert(typeID uint32, value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	h := t.next
	t.next++
	t.entries[h] = entry{value: value, typeID: typeID}
	return h
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[handle]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(handle Handle, typeID uint32) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[handle]
	if !ok || e.typeID != typeID {
		return nil, false
	}
	return e.value, true
}

// TypeID returns the type tag a handle was inserted with.
func (t *Table) TypeID(handle Handle) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[handle]
	return e.typeID, ok
}

// Remove drops a resource and returns (value, true) if found. Values
// implementing Dropper have Drop called before Remove returns.
func (t *Table) Remove(handle Handle) (any, bool) {
	t.mu.Lock()
	e, ok := t.entries[handle]
	if ok {
		delete(t.entries, handle)
	}
	t.mu.Unlock()

	if !ok {
		return nil, false
	}
	if d, ok := e.value.(Dropper); ok {
		d.Drop()
	}
	return e.value, true
}

// Len returns the number of active resources.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Close drops all resources and stops accepting inserts. Lookups on a closed
// table miss; Close is idempotent.
func (t *Table) Close() error {
	t.mu.Lock()
	entries := t.entries
	t.entries = make(map[Handle]entry)
	t.closed = true
	t.mu.Unlock()

	for _, e := range entries {
		if d, ok := e.value.(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}
