package bmap

import "hash/maphash"

// Hasher maps a key to the unsigned integer used to select its bucket slot.
// It must be deterministic and referentially stable for the life of a table;
// Resize depends on this to redistribute keys consistently.
type Hasher[K comparable] func(K) uint64

// defaultHasher builds a seeded hasher on hash/maphash. Every table gets its
// own seed, so slot placement of the same key set differs between instances.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}
