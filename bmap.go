// Package bmap implements a generic, thread-safe chained hash table with one
// exclusive lock per bucket slot.
//
// Core properties:
//   - Fine-grained locking: operations on slots with different indices run
//     fully in parallel; same-slot operations serialize.
//   - Pluggable, caller-supplied hash strategy with a seeded built-in default.
//   - Caller-triggered live resizing that never loses a concurrent write.
//   - Single-pass, caller-synchronized traversal via Cursor, Range and All.
//
// Notes:
//   - A Table must be created with New; the zero value is not usable.
//   - Capacity is the slot count, not an entry limit; chains grow unbounded.
package bmap

import (
	"sync"
	"sync/atomic"

	"github.com/llxisdsh/bmap/internal/opt"
)

// entry is an owned key/value pair linked into its slot's chain.
// A chain never holds two entries with equal keys.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// table is one published pair of equal-length slot and lock arrays.
// Its shape is immutable: Resize builds a fresh table and swaps the
// owning Table's pointer rather than growing the arrays in place.
type table[K comparable, V any] struct {
	slots []*entry[K, V]  // chain heads, nil when the slot is empty
	locks []opt.SlotMutex // 1:1 with slots
}

func newTable[K comparable, V any](capacity int) *table[K, V] {
	return &table[K, V]{
		slots: make([]*entry[K, V], capacity),
		locks: make([]opt.SlotMutex, capacity),
	}
}

// put applies the chain insertion rule to slot i: an empty slot gets a new
// head, an equal key is overwritten in place, anything else appends at the
// tail. The caller must hold the slot's lock, or own the table exclusively
// (unpublished tables during Resize and Clone).
func (tab *table[K, V]) put(i int, key K, value V) {
	if tab.slots[i] == nil {
		tab.slots[i] = &entry[K, V]{key: key, value: value}
		return
	}

	e := tab.slots[i]
	for e.next != nil && e.key != key {
		e = e.next
	}
	if e.key == key {
		e.value = value
		return
	}
	e.next = &entry[K, V]{key: key, value: value}
}

// Table is a concurrent hash table partitioned into independently lockable
// bucket slots. Each key hashes to one slot; the slot's chain holds every
// entry whose hash maps there.
//
// Concurrency contract:
//   - Exists, Lookup, Insert and Remove hold exactly one slot lock for the
//     duration of the chain scan plus any single mutation. They are mutually
//     atomic within a slot; across slots no ordering is guaranteed.
//   - Resize is exclusive with all of the above (see Resize).
//   - Cursor, Range and All take no locks; the caller must exclude concurrent
//     mutation for the traversal's lifetime.
//
// Create instances with New; a zero Table has no slots and no hasher.
type Table[K comparable, V any] struct {
	tab  atomic.Pointer[table[K, V]]
	hash Hasher[K]
	// structural admits one Resize at a time, so mutators only ever race
	// with a single table swap.
	structural sync.Mutex
}

// New creates a Table with capacity bucket slots and the given hash strategy.
//
// Parameters:
//   - capacity: slot count; used as the modulus for bucket selection, so it
//     must be at least 1. ErrInvalidCapacity is returned otherwise, with no
//     partial state left behind.
//   - hash: maps a key to the unsigned integer that selects its slot. It must
//     be deterministic and stable for the table's lifetime. Pass nil to use
//     the seeded built-in default.
func New[K comparable, V any](capacity int, hash Hasher[K]) (*Table[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if hash == nil {
		hash = defaultHasher[K]()
	}

	t := &Table[K, V]{hash: hash}
	t.tab.Store(newTable[K, V](capacity))
	return t, nil
}

// lockSlot acquires the slot lock for key in the current table. A Resize may
// publish a new table between the pointer load and the lock acquisition; the
// lock then guards a stale slot, so release it and retry against the fresh
// pointer. Resize holds every slot lock of the table it replaces, which makes
// the recheck sufficient: a lock acquired on the current table stays current
// until it is released.
func (t *Table[K, V]) lockSlot(key K) (*table[K, V], int) {
	h := t.hash(key)
	for {
		tab := t.tab.Load()
		i := int(h % uint64(len(tab.slots)))
		tab.locks[i].Mu.Lock()
		if t.tab.Load() == tab {
			return tab, i
		}
		tab.locks[i].Mu.Unlock()
	}
}

// Exists reports whether an entry with the given key is present.
// It has no side effects.
func (t *Table[K, V]) Exists(key K) bool {
	tab, i := t.lockSlot(key)
	defer tab.locks[i].Mu.Unlock()

	for e := tab.slots[i]; e != nil; e = e.next {
		if e.key == key {
			return true
		}
	}
	return false
}

// Lookup returns a copy of the value stored under key.
// It returns ErrKeyNotFound if no such entry exists.
func (t *Table[K, V]) Lookup(key K) (V, error) {
	tab, i := t.lockSlot(key)
	defer tab.locks[i].Mu.Unlock()

	for e := tab.slots[i]; e != nil; e = e.next {
		if e.key == key {
			return e.value, nil
		}
	}
	return *new(V), ErrKeyNotFound
}

// Insert stores value under key. An existing entry with an equal key is
// overwritten in place (last writer under the slot lock wins); otherwise a
// new entry is appended at the tail of the slot's chain.
func (t *Table[K, V]) Insert(key K, value V) {
	tab, i := t.lockSlot(key)
	tab.put(i, key, value)
	tab.locks[i].Mu.Unlock()
}

// Remove unlinks and discards the entry with the given key, repairing the
// chain's head or the predecessor's link. It returns ErrKeyNotFound, with no
// side effect, if the key is absent.
func (t *Table[K, V]) Remove(key K) error {
	tab, i := t.lockSlot(key)
	defer tab.locks[i].Mu.Unlock()

	var prev *entry[K, V]
	e := tab.slots[i]
	for e != nil && e.key != key {
		prev = e
		e = e.next
	}
	if e == nil {
		return ErrKeyNotFound
	}

	if prev == nil {
		tab.slots[i] = e.next
	} else {
		prev.next = e.next
	}
	return nil
}

// Size returns the current slot count, not the number of stored entries.
// This mirrors the table's role as a fixed array of buckets; use Len for the
// live entry count.
func (t *Table[K, V]) Size() int {
	return len(t.tab.Load().slots)
}

// Len counts the live entries, visiting each slot under its own lock. Like
// every multi-slot read, the result is a per-slot consistent snapshot, not a
// globally atomic one.
func (t *Table[K, V]) Len() int {
	tab := t.tab.Load()
	n := 0
	for i := range tab.slots {
		tab.locks[i].Mu.Lock()
		for e := tab.slots[i]; e != nil; e = e.next {
			n++
		}
		tab.locks[i].Mu.Unlock()
	}
	return n
}
