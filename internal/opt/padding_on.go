//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !bmap_disable_padding && !bmap_enable_padding

package opt

import (
	"sync"
	"unsafe"
)

// SlotMutex guards one bucket slot of a table. Slot mutexes live in a
// contiguous array, so neighboring locks share cache lines unless padded.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type SlotMutex struct {
	Mu sync.Mutex
	_  [(CacheLineSize - unsafe.Sizeof(struct {
		Mu sync.Mutex
	}{})%CacheLineSize) % CacheLineSize]byte
}
