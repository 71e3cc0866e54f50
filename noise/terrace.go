// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// terrace.go - maps the source output onto a terrace-forming curve.
//
// Between two neighbouring terrace points the curve rises slowly at first and
// steeply near the next point (alpha² easing), producing flat steps. With
// inversion the easing is mirrored, so the steep part sits at the start of
// each step. Outside the terrace range the output is the nearest point.

package noise

import (
	"math"
	"sort"
)

// MinTerracePoints is the minimum number of terrace points.
const MinTerracePoints = 2

// Terrace maps its source onto stepped plateaus.
type Terrace[P any, S NoiseFn[P]] struct {
	source S
	points []float64
	invert bool
}

// NewTerrace returns a Terrace with the given step positions, which must be
// strictly ascending. The slice is copied.
// Errors: ErrTooFewPoints (< MinTerracePoints), ErrNonFinite, ErrUnsortedPoints.
func NewTerrace[P any, S NoiseFn[P]](source S, invert bool, points ...float64) (Terrace[P, S], error) {
	if err := validateAscending(points, MinTerracePoints); err != nil {
		return Terrace[P, S]{}, opError("Terrace", err)
	}
	cp := make([]float64, len(points))
	copy(cp, points)

	return Terrace[P, S]{source: source, points: cp, invert: invert}, nil
}

// MakeTerracePoints returns count evenly spaced points covering [-1, 1].
// Errors: ErrTooFewPoints when count < MinTerracePoints.
func MakeTerracePoints(count int) ([]float64, error) {
	if count < MinTerracePoints {
		return nil, opError("MakeTerracePoints", ErrTooFewPoints)
	}
	step := 2.0 / float64(count-1)
	points := make([]float64, count)
	for i := range points {
		points[i] = -1.0 + float64(i)*step
	}
	points[count-1] = 1.0

	return points, nil
}

// Inverted reports whether the terraces are inverted.
func (n Terrace[P, S]) Inverted() bool { return n.invert }

// TerracePoints returns a copy of the step positions.
func (n Terrace[P, S]) TerracePoints() []float64 {
	out := make([]float64, len(n.points))
	copy(out, n.points)

	return out
}

// Get returns the terraced value of source(point).
func (n Terrace[P, S]) Get(point P) float64 {
	v := n.source.Get(point)
	if math.IsNaN(v) {
		return v
	}
	pts := n.points
	count := len(pts)

	pos := sort.Search(count, func(i int) bool { return pts[i] > v })
	i0 := clampIndex(pos-1, count)
	i1 := clampIndex(pos, count)
	if i0 == i1 {
		return pts[i1]
	}

	lo, hi := pts[i0], pts[i1]
	alpha := (v - lo) / (hi - lo)
	if n.invert {
		alpha = 1 - alpha
		lo, hi = hi, lo
	}

	return lerp(lo, hi, alpha*alpha)
}
