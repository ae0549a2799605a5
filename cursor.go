package bmap

import "iter"

// Cursor is a forward-only, single-pass traversal over all entries of the
// table structure captured when the cursor was created. Enumeration order is
// slot-index ascending, then chain order within a slot; the order is not
// stable across resizes.
//
// WARNING:
// - The cursor takes no slot locks while stepping. The caller must guarantee
//   that no mutation of the table happens for the cursor's lifetime;
//   concurrent mutation during traversal is undefined behavior.
// - Not safe across goroutines.
type Cursor[K comparable, V any] struct {
	tab *table[K, V]
	cur *entry[K, V]
	idx int
}

// Cursor returns a cursor positioned at the first non-empty slot's head
// entry, or already at the end if the table is empty.
func (t *Table[K, V]) Cursor() *Cursor[K, V] {
	tab := t.tab.Load()
	c := &Cursor[K, V]{tab: tab}
	for c.idx < len(tab.slots) && tab.slots[c.idx] == nil {
		c.idx++
	}
	if c.idx < len(tab.slots) {
		c.cur = tab.slots[c.idx]
	}
	return c
}

// AtEnd reports whether the traversal is exhausted.
func (c *Cursor[K, V]) AtEnd() bool {
	return c.cur == nil
}

// Advance moves to the next entry in the current chain, or to the head of
// the next non-empty slot once the chain is exhausted. Advancing past the
// end is a no-op.
func (c *Cursor[K, V]) Advance() {
	if c.cur == nil {
		return
	}
	if c.cur.next != nil {
		c.cur = c.cur.next
		return
	}

	c.idx++
	for c.idx < len(c.tab.slots) && c.tab.slots[c.idx] == nil {
		c.idx++
	}
	if c.idx < len(c.tab.slots) {
		c.cur = c.tab.slots[c.idx]
	} else {
		c.cur = nil
	}
}

// Current returns the key and value of the current entry.
// It must only be called when AtEnd reports false.
func (c *Cursor[K, V]) Current() (K, V) {
	return c.cur.key, c.cur.value
}

// Key returns the current entry's key.
func (c *Cursor[K, V]) Key() K {
	return c.cur.key
}

// Value returns the current entry's value.
func (c *Cursor[K, V]) Value() V {
	return c.cur.value
}

// Range calls fn for every entry in cursor order until fn returns false.
// It shares Cursor's contract: no locks are taken, and the caller must
// exclude concurrent mutation for the duration of the walk.
func (t *Table[K, V]) Range(fn func(K, V) bool) {
	for c := t.Cursor(); !c.AtEnd(); c.Advance() {
		if !fn(c.cur.key, c.cur.value) {
			return
		}
	}
}

// All returns the entries as an iterator in cursor order, under the same
// caller-synchronization contract as Range.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Range(yield)
	}
}
