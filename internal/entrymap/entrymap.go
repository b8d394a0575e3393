// Package entrymap is the staging area for coordinate updates: a packed
// (row, col) key codec plus a map guarded by a single exclusive lock per
// matrix instance. Producers may call the mutators concurrently; each
// operation is linearizable and the only cross-key guarantee is
// last-writer-wins per key.
package entrymap

import "sync"

// indexBits is the bit width available to each half of a packed key.
const indexBits = 32

// Key packs a (row, col) index pair into a single uint64: row in the
// high 32 bits, col in the low 32 bits. Integer ordering of keys equals
// row-major, column-ascending ordering of the pairs, so a sort on keys
// doubles as structural ordering.
//
// Callers must ensure row and col fit in 32 bits before encoding; the
// public Matrix API validates this at the boundary.
type Key uint64

// Encode packs row and col into a Key.
func Encode(row, col uint32) Key {
	return Key(uint64(row)<<indexBits | uint64(col))
}

// Decode unpacks the (row, col) pair from k.
func (k Key) Decode() (row, col uint32) {
	return uint32(k >> indexBits), uint32(k)
}

// Map is a mutex-guarded mapping from packed keys to values.
// Duplicate inserts overwrite (last write wins); deleting an absent key
// is a no-op.
type Map[T any] struct {
	mu      sync.Mutex
	entries map[Key]T
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{entries: make(map[Key]T)}
}

// Set upserts the value for k.
func (m *Map[T]) Set(k Key, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[k] = v
}

// SetBatch upserts multiple key/value pairs under one lock acquisition.
// keys and values must have equal length.
func (m *Map[T]) SetBatch(keys []Key, values []T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, k := range keys {
		m.entries[k] = values[i]
	}
}

// Delete removes the entry for k if present.
func (m *Map[T]) Delete(k Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, k)
}

// Len returns the number of staged entries.
func (m *Map[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Drain swaps the live map for an empty one and calls fn with the
// drained entries while still holding the lock. The critical section
// must span both the snapshot and whatever state fn publishes from it:
// releasing the lock in between would let a concurrent Set/Delete race
// with the publication of the built structure.
//
// The drained map is not retained; dropping the only reference on
// return releases its backing storage.
func (m *Map[T]) Drain(fn func(entries map[Key]T)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	taken := m.entries
	m.entries = make(map[Key]T)
	fn(taken)
}
