// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// cache.go - single-slot memoization of the last evaluated point.
//
// Cache keeps exactly one (point, value) pair. A call with the same point as
// the previous one returns the stored value without touching the child; any
// other point evaluates the child and replaces the slot. Points are compared
// exactly (bit for bit for float vectors), never with a tolerance.
//
// Concurrency: the slot is written on every miss, so a Cache must not be
// shared between goroutines or between two parent nodes. Use SyncCache to serialize access, or Clone one
// Cache per worker.

package noise

import (
	"math"
	"sync"
)

// Cache memoizes the most recent evaluation of its source.
type Cache[P comparable, S NoiseFn[P]] struct {
	source S
	point  P
	value  float64
	valid  bool
}

// NewCache wraps source with an empty memo slot.
func NewCache[P comparable, S NoiseFn[P]](source S) *Cache[P, S] {
	return &Cache[P, S]{source: source}
}

// Get returns the memoized value when point matches the last point,
// otherwise evaluates the source and stores the result.
func (c *Cache[P, S]) Get(point P) float64 {
	if c.valid && samePoint(c.point, point) {
		return c.value
	}
	c.value = c.source.Get(point)
	c.point = point
	c.valid = true

	return c.value
}

// Source returns the wrapped function.
func (c *Cache[P, S]) Source() S { return c.source }

// Reset empties the memo slot.
func (c *Cache[P, S]) Reset() {
	var zero P
	c.point, c.value, c.valid = zero, 0, false
}

// Clone returns a Cache over the same source with an empty slot, for use by
// another goroutine. The source itself is copied by value, so it must be
// safe for concurrent Get (i.e. contain no Cache of its own).
func (c *Cache[P, S]) Clone() *Cache[P, S] {
	return &Cache[P, S]{source: c.source}
}

// SyncCache is a Cache guarded by a mutex. Concurrent callers are
// serialized; each still sees Cache semantics.
type SyncCache[P comparable, S NoiseFn[P]] struct {
	mu    sync.Mutex
	cache Cache[P, S]
}

// NewSyncCache wraps source with a mutex-protected memo slot.
func NewSyncCache[P comparable, S NoiseFn[P]](source S) *SyncCache[P, S] {
	return &SyncCache[P, S]{cache: Cache[P, S]{source: source}}
}

// Get is Cache.Get under the lock.
func (c *SyncCache[P, S]) Get(point P) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Get(point)
}

// samePoint compares points exactly. [N]float64 and [N]float32 points
// (N = 2, 3, 4) are compared by bit pattern so -0 and +0 differ and a NaN
// coordinate matches itself. Every other comparable type uses ==, which for
// other float layouts treats -0 as +0 and never matches NaN.
func samePoint[P comparable](a, b P) bool {
	switch x := any(a).(type) {
	case [2]float64:
		y := any(b).([2]float64)
		return sameBits(x[:], y[:])
	case [3]float64:
		y := any(b).([3]float64)
		return sameBits(x[:], y[:])
	case [4]float64:
		y := any(b).([4]float64)
		return sameBits(x[:], y[:])
	case [2]float32:
		y := any(b).([2]float32)
		return sameBits32(x[:], y[:])
	case [3]float32:
		y := any(b).([3]float32)
		return sameBits32(x[:], y[:])
	case [4]float32:
		y := any(b).([4]float32)
		return sameBits32(x[:], y[:])
	}

	return a == b
}

// sameBits reports whether a and b hold identical float64 bit patterns.
func sameBits(a, b []float64) bool {
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}

// sameBits32 is sameBits for float32 coordinates.
func sameBits32(a, b []float32) bool {
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}

	return true
}
