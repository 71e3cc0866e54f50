// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// args.go - per-axis transformer arguments.
//
// Args is a small tagged value: either one value broadcast to every axis, or
// an explicit list of 1..4 values. Expand normalizes both to [x, y, z, u],
// filling the axes the caller left out with a transformer-specific default
// (0 for offsets and angles, 1 for scale factors).

package noise

import (
	"fmt"

	"github.com/spf13/cast"
)

// maxAxes is the number of axes the argument array can describe.
const maxAxes = 4

// Args describes per-axis transformer parameters.
type Args struct {
	values  [maxAxes]float64
	count   int
	uniform bool
}

// Uniform returns Args that apply v to every axis.
func Uniform(v float64) Args {
	return Args{values: [maxAxes]float64{v, v, v, v}, count: maxAxes, uniform: true}
}

// Axes returns Args for the listed axes in x, y, z, u order.
// Panics when called with no values or more than four (programmer error).
func Axes(values ...float64) Args {
	if len(values) == 0 || len(values) > maxAxes {
		panic(fmt.Sprintf("noise: Axes(%d values): %v", len(values), ErrArgCount))
	}
	var a Args
	a.count = copy(a.values[:], values)

	return a
}

// IsUniform reports whether a was built by Uniform.
func (a Args) IsUniform() bool { return a.uniform }

// Len reports how many axes were supplied explicitly (4 for uniform args).
func (a Args) Len() int { return a.count }

// Expand returns the four per-axis values; axes beyond Len are set to def.
// The zero Args expands to [def, def, def, def].
func (a Args) Expand(def float64) [4]float64 {
	if a.uniform {
		return a.values
	}
	out := [4]float64{def, def, def, def}
	copy(out[:], a.values[:a.count])

	return out
}

// ParseArgs converts a loosely typed value into Args.
//
// Accepted shapes: Args itself; any scalar cast can turn into a float64
// (uniform); []float64, []float32, []int, []any and [1..4]float64 arrays
// (explicit). Errors: ErrArgCount for empty or oversized lists, or the
// conversion error from cast.
func ParseArgs(v any) (Args, error) {
	switch t := v.(type) {
	case Args:
		return t, nil
	case [1]float64:
		return Axes(t[:]...), nil
	case [2]float64:
		return Axes(t[:]...), nil
	case [3]float64:
		return Axes(t[:]...), nil
	case [4]float64:
		return Axes(t[:]...), nil
	case []float64:
		return axesFrom(len(t), func(i int) any { return t[i] })
	case []float32:
		return axesFrom(len(t), func(i int) any { return t[i] })
	case []int:
		return axesFrom(len(t), func(i int) any { return t[i] })
	case []any:
		return axesFrom(len(t), func(i int) any { return t[i] })
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Args{}, opError("ParseArgs", err)
	}

	return Uniform(f), nil
}

// axesFrom builds explicit Args from n indexable values.
func axesFrom(n int, at func(int) any) (Args, error) {
	if n == 0 || n > maxAxes {
		return Args{}, opError("ParseArgs", ErrArgCount)
	}
	values := make([]float64, n)
	for i := range values {
		f, err := cast.ToFloat64E(at(i))
		if err != nil {
			return Args{}, opError("ParseArgs", err)
		}
		values[i] = f
	}

	return Axes(values...), nil
}
