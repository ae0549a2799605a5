package bmap

import "errors"

var (
	// ErrKeyNotFound is returned by Lookup and Remove when no entry with the
	// given key is present.
	ErrKeyNotFound = errors.New("bmap: key not found")

	// ErrInvalidCapacity is returned by New and Resize when the requested
	// capacity cannot serve as a slot count.
	ErrInvalidCapacity = errors.New("bmap: capacity must be at least 1")
)
