// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// point.go - helpers for moving between Vector points and the fixed
// four-slot form the transformers compute in.

package noise

import "github.com/spf13/cast"

// Dim reports the number of axes of the point type P.
func Dim[P Vector]() int {
	var p P

	return len(p)
}

// widen copies p into a four-slot array; unused slots are zero.
func widen[P Vector](p P) [4]float64 {
	var out [4]float64
	for i := 0; i < len(p); i++ {
		out[i] = p[i]
	}

	return out
}

// narrow copies the first len(P) slots of v into a P.
func narrow[P Vector](v [4]float64) P {
	var p P
	for i := 0; i < len(p); i++ {
		p[i] = v[i]
	}

	return p
}

// PointOf converts loosely typed coordinates into a P. Each coordinate may be
// any value cast can turn into a float64 (ints, float32, numeric strings...).
// Errors: ErrDimension when the count differs from len(P), or the cast error.
func PointOf[P Vector](coords ...any) (P, error) {
	var p P
	if len(coords) != len(p) {
		return p, opError("PointOf", ErrDimension)
	}
	for i, c := range coords {
		f, err := cast.ToFloat64E(c)
		if err != nil {
			return p, opError("PointOf", err)
		}
		p[i] = f
	}

	return p, nil
}

// Sample evaluates fn at the point described by coords (see PointOf).
// Only the conversion can fail; the evaluation itself never does.
func Sample[P Vector](fn NoiseFn[P], coords ...any) (float64, error) {
	p, err := PointOf[P](coords...)
	if err != nil {
		return 0, err
	}

	return fn.Get(p), nil
}
