// Package slots provides the fixed-size, per-worker storage behind an Accumulator.
package slots

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// cell holds one slot value, padded so that neighbouring workers do not share a cache line
type cell[T any] struct {
	value T
	_     cpu.CacheLinePad
}

// Array is a fixed-length sequence of slots, indexed by worker identity.
// It is never resized. Each slot must only be mutated by one worker at a time.
type Array[T any] struct {
	cells []cell[T]
}

// New allocates capacity slots, each seeded with identity
func New[T any](capacity int, identity T) *Array[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("slots: capacity must be positive, got %d", capacity))
	}
	cells := make([]cell[T], capacity)
	for i := range cells {
		cells[i].value = identity
	}
	return &Array[T]{cells: cells}
}

// Len returns the number of slots, or 0 once released
func (a *Array[T]) Len() int {
	return len(a.cells)
}

// Get returns the value held in slot i
func (a *Array[T]) Get(i int) T {
	return a.cells[i].value
}

// Set replaces the value held in slot i
func (a *Array[T]) Set(i int, v T) {
	a.cells[i].value = v
}

// At returns a pointer to slot i, for in-place read-modify-write
func (a *Array[T]) At(i int) *T {
	return &a.cells[i].value
}

// Release drops the backing storage. Any later access panics with an index error.
func (a *Array[T]) Release() {
	a.cells = nil
}

// Released returns true iff Release has been called
func (a *Array[T]) Released() bool {
	return a.cells == nil
}
