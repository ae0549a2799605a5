package bmap

// Clone builds an independent copy of the table with the same capacity and
// hash strategy. Source slots are locked and copied one at a time, so the
// result is a per-slot consistent snapshot, not a globally atomic one:
// mutations racing the clone land in it bucket by bucket. Mutating either
// table afterward never affects the other.
func (t *Table[K, V]) Clone() *Table[K, V] {
	src := t.tab.Load()
	dst := newTable[K, V](len(src.slots))

	for i := range src.slots {
		src.locks[i].Mu.Lock()
		for e := src.slots[i]; e != nil; e = e.next {
			dst.put(int(t.hash(e.key)%uint64(len(dst.slots))), e.key, e.value)
		}
		src.locks[i].Mu.Unlock()
	}

	c := &Table[K, V]{hash: t.hash}
	c.tab.Store(dst)
	return c
}
