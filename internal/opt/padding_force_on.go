//go:build bmap_enable_padding

package opt

import (
	"sync"
	"unsafe"
)

// SlotMutex guards one bucket slot of a table.
// Padding is force-enabled via the bmap_enable_padding build tag.
// Use: go build -tags=bmap_enable_padding
type SlotMutex struct {
	Mu sync.Mutex
	_  [(CacheLineSize - unsafe.Sizeof(struct {
		Mu sync.Mutex
	}{})%CacheLineSize) % CacheLineSize]byte
}
