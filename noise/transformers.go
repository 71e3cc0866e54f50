// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// transformers.go - nodes that move the input point before delegating to
// their source: TranslatePoint, ScalePoint and RotatePoint.
//
// All three take per-axis Args. Axes the caller leaves out keep their
// identity value (offset 0, factor 1, angle 0). Points are widened to four
// slots, transformed, and narrowed back to P, so one implementation serves
// 2-, 3- and 4-D trees.

package noise

import "math"

// Identity values for unconfigured axes.
const (
	DefaultTranslation = 0.0 // TranslatePoint offset
	DefaultPointScale  = 1.0 // ScalePoint factor
	DefaultAngle       = 0.0 // RotatePoint angle, degrees
)

// TranslatePoint adds a per-axis offset to the point.
type TranslatePoint[P Vector, S NoiseFn[P]] struct {
	source  S
	offsets [4]float64
}

// NewTranslatePoint returns a node that evaluates source at point + offsets.
// Errors: ErrNonFinite.
func NewTranslatePoint[P Vector, S NoiseFn[P]](source S, offsets Args) (TranslatePoint[P, S], error) {
	v := offsets.Expand(DefaultTranslation)
	if err := validateFinite(v[:]...); err != nil {
		return TranslatePoint[P, S]{}, opError("TranslatePoint", err)
	}

	return TranslatePoint[P, S]{source: source, offsets: v}, nil
}

// Offsets reports the expanded [x, y, z, u] offsets.
func (n TranslatePoint[P, S]) Offsets() [4]float64 { return n.offsets }

// Get evaluates the source at the translated point.
func (n TranslatePoint[P, S]) Get(point P) float64 {
	for i := 0; i < len(point); i++ {
		point[i] += n.offsets[i]
	}

	return n.source.Get(point)
}

// ScalePoint multiplies each coordinate by a per-axis factor.
type ScalePoint[P Vector, S NoiseFn[P]] struct {
	source  S
	factors [4]float64
}

// NewScalePoint returns a node that evaluates source at point * factors.
// Errors: ErrNonFinite.
func NewScalePoint[P Vector, S NoiseFn[P]](source S, factors Args) (ScalePoint[P, S], error) {
	v := factors.Expand(DefaultPointScale)
	if err := validateFinite(v[:]...); err != nil {
		return ScalePoint[P, S]{}, opError("ScalePoint", err)
	}

	return ScalePoint[P, S]{source: source, factors: v}, nil
}

// Factors reports the expanded [x, y, z, u] factors.
func (n ScalePoint[P, S]) Factors() [4]float64 { return n.factors }

// Get evaluates the source at the scaled point.
func (n ScalePoint[P, S]) Get(point P) float64 {
	for i := 0; i < len(point); i++ {
		point[i] *= n.factors[i]
	}

	return n.source.Get(point)
}

// RotatePoint rotates the point around the origin.
//
// Angles are in degrees and follow the libnoise convention: the x, y and z
// angles build the 3-D rotation matrix, and the u angle rotates the (z, u)
// plane afterwards. The whole rotation is one 4×4 matrix applied to the
// point embedded in four dimensions, so a 2-D tree rotates by the z angle.
type RotatePoint[P Vector, S NoiseFn[P]] struct {
	source S
	angles [4]float64
	m      affine
}

// NewRotatePoint returns a node that evaluates source at the rotated point.
// Errors: ErrNonFinite.
func NewRotatePoint[P Vector, S NoiseFn[P]](source S, angles Args) (RotatePoint[P, S], error) {
	v := angles.Expand(DefaultAngle)
	if err := validateFinite(v[:]...); err != nil {
		return RotatePoint[P, S]{}, opError("RotatePoint", err)
	}

	return RotatePoint[P, S]{source: source, angles: v, m: rotation(v)}, nil
}

// Angles reports the expanded [x, y, z, u] angles in degrees.
func (n RotatePoint[P, S]) Angles() [4]float64 { return n.angles }

// Get evaluates the source at the rotated point.
func (n RotatePoint[P, S]) Get(point P) float64 {
	return n.source.Get(narrow[P](n.m.apply(widen(point))))
}

// affine is a row-major 4×4 linear map.
type affine [4][4]float64

// identity returns the identity map.
func identity() affine {
	return affine{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// apply returns m·v.
func (m affine) apply(v [4]float64) [4]float64 {
	var out [4]float64
	for r := 0; r < 4; r++ {
		out[r] = m[r][0]*v[0] + m[r][1]*v[1] + m[r][2]*v[2] + m[r][3]*v[3]
	}

	return out
}

// mul returns m·o (apply o first, then m).
func (m affine) mul(o affine) affine {
	var out affine
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c] + m[r][2]*o[2][c] + m[r][3]*o[3][c]
		}
	}

	return out
}

// rotation builds the rotation matrix for [x, y, z, u] angles in degrees.
func rotation(deg [4]float64) affine {
	xSin, xCos := math.Sincos(deg[0] * math.Pi / 180)
	ySin, yCos := math.Sincos(deg[1] * math.Pi / 180)
	zSin, zCos := math.Sincos(deg[2] * math.Pi / 180)
	uSin, uCos := math.Sincos(deg[3] * math.Pi / 180)

	xyz := identity()
	xyz[0] = [4]float64{ySin*xSin*zSin + yCos*zCos, xCos * zSin, ySin*zCos - yCos*xSin*zSin, 0}
	xyz[1] = [4]float64{ySin*xSin*zCos - yCos*zSin, xCos * zCos, -yCos*xSin*zCos - ySin*zSin, 0}
	xyz[2] = [4]float64{-ySin * xCos, xSin, yCos * xCos, 0}

	zu := identity()
	zu[2][2], zu[2][3] = uCos, -uSin
	zu[3][2], zu[3][3] = uSin, uCos

	return zu.mul(xyz)
}
