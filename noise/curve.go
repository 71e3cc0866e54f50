// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// curve.go - remaps the source output through a cubic spline defined by
// user-supplied control points.
//
// Algorithm:
//  1. v = source(point).
//  2. Find the segment [k, k+1] whose inputs bracket v (binary search).
//     Values outside the control range use the first or last segment.
//  3. alpha = (v - in[k]) / (in[k+1] - in[k]); outside the range alpha leaves
//     [0,1], which extrapolates the end segment's cubic.
//  4. Interpolate cubically between out[k] and out[k+1], using out[k-1] and
//     out[k+2] (indices clamped to the array) as the outer neighbours.
//
// Complexity: O(log n) per Get, O(n) construction.

package noise

import "sort"

// MinCurvePoints is the minimum number of control points for a Curve.
const MinCurvePoints = 4

// ControlPoint maps a source output (Input) to a curve output (Output).
type ControlPoint struct {
	Input  float64
	Output float64
}

// Curve remaps its source through a cubic spline.
type Curve[P any, S NoiseFn[P]] struct {
	source S
	points []ControlPoint
}

// NewCurve returns a Curve over points, which must be strictly ascending by
// Input. The slice is copied.
// Errors: ErrTooFewPoints (< MinCurvePoints), ErrNonFinite, ErrUnsortedPoints.
func NewCurve[P any, S NoiseFn[P]](source S, points ...ControlPoint) (Curve[P, S], error) {
	if err := validateControlPoints(points, MinCurvePoints); err != nil {
		return Curve[P, S]{}, opError("Curve", err)
	}
	cp := make([]ControlPoint, len(points))
	copy(cp, points)

	return Curve[P, S]{source: source, points: cp}, nil
}

// ControlPoints returns a copy of the configured control points.
func (n Curve[P, S]) ControlPoints() []ControlPoint {
	out := make([]ControlPoint, len(n.points))
	copy(out, n.points)

	return out
}

// Get returns the spline value at source(point).
func (n Curve[P, S]) Get(point P) float64 {
	v := n.source.Get(point)
	pts := n.points
	count := len(pts)

	// first control point whose input lies above v
	pos := sort.Search(count, func(i int) bool { return pts[i].Input > v })
	k := pos - 1
	if k < 0 {
		k = 0
	}
	if k > count-2 {
		k = count - 2
	}

	in0, in1 := pts[k].Input, pts[k+1].Input
	alpha := (v - in0) / (in1 - in0)

	return cubic(
		pts[clampIndex(k-1, count)].Output,
		pts[k].Output,
		pts[k+1].Output,
		pts[clampIndex(k+2, count)].Output,
		alpha,
	)
}

// validateControlPoints checks count, finiteness and strict ordering.
func validateControlPoints(points []ControlPoint, minCount int) error {
	inputs := make([]float64, len(points))
	for i, p := range points {
		if err := validateFinite(p.Output); err != nil {
			return err
		}
		inputs[i] = p.Input
	}

	return validateAscending(inputs, minCount)
}
