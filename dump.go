package bmap

import (
	"fmt"
	"io"
	"strings"
)

// Dump renders every non-empty slot and its chain to w, one slot per line:
//
//	[3] -> (25, hello), (34, world)
//
// Each slot is read under its own lock; the line is built first and written
// to w after the lock is released. This is a developer aid, the format is
// not stable.
func (t *Table[K, V]) Dump(w io.Writer) error {
	tab := t.tab.Load()
	for i := range tab.slots {
		tab.locks[i].Mu.Lock()
		if tab.slots[i] == nil {
			tab.locks[i].Mu.Unlock()
			continue
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "[%d] ->", i)
		for e := tab.slots[i]; e != nil; e = e.next {
			if e != tab.slots[i] {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, " (%v, %v)", e.key, e.value)
		}
		sb.WriteByte('\n')
		tab.locks[i].Mu.Unlock()

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Dump rendering of the table.
func (t *Table[K, V]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb) // strings.Builder never fails
	return sb.String()
}
