//go:build bmap_disable_padding

package opt

import (
	"sync"
)

// SlotMutex guards one bucket slot of a table.
// Padding is force-disabled via the bmap_disable_padding build tag.
// Use: go build -tags=bmap_disable_padding
type SlotMutex struct {
	Mu sync.Mutex
}
