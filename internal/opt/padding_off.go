//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !bmap_disable_padding && !bmap_enable_padding

package opt

import (
	"sync"
)

// SlotMutex guards one bucket slot of a table.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type SlotMutex struct {
	Mu sync.Mutex
}
