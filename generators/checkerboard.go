// SPDX-License-Identifier: MIT
// Package: lvnoise/generators
//
// checkerboard.go - alternating +1 / -1 blocks aligned to the axes.

package generators

import (
	"math"

	"github.com/katalvlaran/lvnoise/noise"
)

// Checkerboard outputs +1 on blocks whose integer coordinates sum to an even
// number and -1 elsewhere. Blocks have side 2^size.
type Checkerboard[P noise.Vector] struct {
	size uint
}

// NewCheckerboard returns a Checkerboard with blocks of side 2^size.
func NewCheckerboard[P noise.Vector](size uint) Checkerboard[P] {
	return Checkerboard[P]{size: size}
}

// SetSize returns a copy with blocks of side 2^size.
func (c Checkerboard[P]) SetSize(size uint) Checkerboard[P] {
	c.size = size
	return c
}

// Size reports the block size exponent.
func (c Checkerboard[P]) Size() uint { return c.size }

// Get returns +1 or -1 depending on the block containing point.
// Non-finite coordinates count as odd.
func (c Checkerboard[P]) Get(point P) float64 {
	width := math.Ldexp(1, int(c.size))
	odd := false
	for i := 0; i < len(point); i++ {
		if math.Mod(math.Floor(point[i]/width), 2) != 0 {
			odd = !odd
		}
	}
	if odd {
		return -1
	}

	return 1
}
