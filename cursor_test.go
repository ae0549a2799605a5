package bmap

import (
	"fmt"
	"testing"
)

func TestCursor_Empty(t *testing.T) {
	m, err := New[int, int](16, identHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c := m.Cursor()
	if !c.AtEnd() {
		t.Fatalf("cursor over empty table not AtEnd")
	}
	c.Advance() // past-the-end advance is a no-op
	if !c.AtEnd() {
		t.Fatalf("cursor left AtEnd after Advance past the end")
	}
}

func TestCursor_VisitsEachKeyOnce(t *testing.T) {
	const n = 100

	m, err := New[string, int](32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < n; i++ {
		m.Insert(fmt.Sprintf("key-%d", i), i)
	}

	seen := make(map[string]int)
	visits := 0
	for c := m.Cursor(); !c.AtEnd(); c.Advance() {
		k, v := c.Current()
		seen[k] = v
		visits++
	}

	if visits != n {
		t.Fatalf("cursor visited %d entries, want %d", visits, n)
	}
	for i := 0; i < n; i++ {
		k := fmt.Sprintf("key-%d", i)
		v, ok := seen[k]
		if !ok || v != i {
			t.Fatalf("cursor missed %s (got %d, %v)", k, v, ok)
		}
	}
}

func TestCursor_Order(t *testing.T) {
	m, err := New[int, string](16, identHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Slot-ascending across slots, insertion order within a chain:
	// 18 mod 16 = 2, so it chains behind key 2.
	for _, k := range []int{11, 2, 5, 18, 1} {
		m.Insert(k, fmt.Sprintf("v%d", k))
	}

	var got []int
	for c := m.Cursor(); !c.AtEnd(); c.Advance() {
		if c.Value() != fmt.Sprintf("v%d", c.Key()) {
			t.Fatalf("entry %d carries value %q", c.Key(), c.Value())
		}
		got = append(got, c.Key())
	}

	want := []int{1, 2, 18, 5, 11}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
}

// A cursor walks the table structure captured at creation. A resize
// publishes a fresh structure and copies entries into it, so a cursor
// created before the resize still completes over the old snapshot.
func TestCursor_SnapshotSurvivesResize(t *testing.T) {
	const n = 50

	m, err := New[int, int](8, identHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < n; i++ {
		m.Insert(i, i)
	}

	c := m.Cursor()
	if err := m.Resize(128); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	visits := 0
	for ; !c.AtEnd(); c.Advance() {
		visits++
	}
	if visits != n {
		t.Fatalf("pre-resize cursor visited %d entries, want %d", visits, n)
	}
}

func TestRange_EarlyStop(t *testing.T) {
	m, err := New[int, int](16, identHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}

	visits := 0
	m.Range(func(int, int) bool {
		visits++
		return visits < 3
	})
	if visits != 3 {
		t.Fatalf("Range visited %d entries after early stop, want 3", visits)
	}
}

func TestAll(t *testing.T) {
	m, err := New[int, int](16, identHash)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
	}

	seen := make(map[int]int)
	for k, v := range m.All() {
		seen[k] = v
	}
	if len(seen) != 10 {
		t.Fatalf("All yielded %d entries, want 10", len(seen))
	}
	for i := 0; i < 10; i++ {
		if seen[i] != i*i {
			t.Fatalf("All yielded %d for key %d, want %d", seen[i], i, i*i)
		}
	}
}
