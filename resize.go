package bmap

// Resize reallocates the slot and lock arrays to newCapacity and rehomes
// every entry by recomputing hash(key) mod newCapacity, applying the same
// overwrite-or-append rule as Insert. It returns ErrInvalidCapacity if
// newCapacity is less than 1, leaving the table untouched.
//
// Resize is safe against concurrent mutators: it acquires every slot lock of
// the current table in index order before rehoming, then publishes the new
// table with an atomic pointer swap and releases the locks. A mutator that
// was blocked on an old slot lock wakes, observes the swapped pointer and
// retries against the new table, so no write can land in a drained chain.
// Only one Resize runs at a time.
func (t *Table[K, V]) Resize(newCapacity int) error {
	if newCapacity < 1 {
		return ErrInvalidCapacity
	}

	t.structural.Lock()
	defer t.structural.Unlock()

	old := t.tab.Load()
	for i := range old.locks {
		old.locks[i].Mu.Lock()
	}

	next := newTable[K, V](newCapacity)
	for i := range old.slots {
		for e := old.slots[i]; e != nil; e = e.next {
			next.put(int(t.hash(e.key)%uint64(newCapacity)), e.key, e.value)
		}
	}
	t.tab.Store(next)

	for i := range old.locks {
		old.locks[i].Mu.Unlock()
	}
	return nil
}
