// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// modifiers.go - unary nodes that remap the output of one child.
// Curve and Terrace live in curve.go and terrace.go.

package noise

import "math"

// Documented modifier defaults.
const (
	DefaultClampLower = -1.0 // Clamp lower bound
	DefaultClampUpper = 1.0  // Clamp upper bound
	DefaultExponent   = 1.0  // Exponent power
	DefaultScale      = 1.0  // ScaleBias scale
	DefaultBias       = 0.0  // ScaleBias bias
)

// Abs outputs |source|.
type Abs[P any, S NoiseFn[P]] struct {
	source S
}

// NewAbs returns a node taking the absolute value of source.
func NewAbs[P any, S NoiseFn[P]](source S) Abs[P, S] {
	return Abs[P, S]{source: source}
}

// Get returns |source(point)|.
func (n Abs[P, S]) Get(point P) float64 {
	return math.Abs(n.source.Get(point))
}

// Negate outputs -source. Negating twice is the identity.
type Negate[P any, S NoiseFn[P]] struct {
	source S
}

// NewNegate returns a node negating source.
func NewNegate[P any, S NoiseFn[P]](source S) Negate[P, S] {
	return Negate[P, S]{source: source}
}

// Get returns -source(point).
func (n Negate[P, S]) Get(point P) float64 {
	return -n.source.Get(point)
}

// Clamp limits the output of source to [lower, upper].
type Clamp[P any, S NoiseFn[P]] struct {
	source       S
	lower, upper float64
}

// NewClamp returns a node clamping source into [lower, upper].
// Errors: ErrNonFinite for NaN/Inf bounds, ErrBadBounds when lower > upper.
func NewClamp[P any, S NoiseFn[P]](source S, lower, upper float64) (Clamp[P, S], error) {
	if err := validateBounds(lower, upper); err != nil {
		return Clamp[P, S]{}, opError("Clamp", err)
	}

	return Clamp[P, S]{source: source, lower: lower, upper: upper}, nil
}

// NewDefaultClamp clamps source into [DefaultClampLower, DefaultClampUpper].
func NewDefaultClamp[P any, S NoiseFn[P]](source S) Clamp[P, S] {
	return Clamp[P, S]{source: source, lower: DefaultClampLower, upper: DefaultClampUpper}
}

// Bounds reports the configured range.
func (n Clamp[P, S]) Bounds() (lower, upper float64) { return n.lower, n.upper }

// Get returns source(point) limited to the bounds. NaN passes through.
func (n Clamp[P, S]) Get(point P) float64 {
	return clampf(n.source.Get(point), n.lower, n.upper)
}

// Exponent raises the magnitude of the source output to a power while
// keeping its sign, so negative outputs never turn into NaN.
type Exponent[P any, S NoiseFn[P]] struct {
	source   S
	exponent float64
}

// NewExponent returns a node computing sign(v) * |v|^exponent.
func NewExponent[P any, S NoiseFn[P]](source S, exponent float64) Exponent[P, S] {
	return Exponent[P, S]{source: source, exponent: exponent}
}

// Get returns sign(v) * |v|^exponent for v = source(point).
func (n Exponent[P, S]) Get(point P) float64 {
	v := n.source.Get(point)

	return math.Copysign(math.Pow(math.Abs(v), n.exponent), v)
}

// ScaleBias applies v*scale + bias to the source output.
type ScaleBias[P any, S NoiseFn[P]] struct {
	source      S
	scale, bias float64
}

// NewScaleBias returns a node computing source*scale + bias.
func NewScaleBias[P any, S NoiseFn[P]](source S, scale, bias float64) ScaleBias[P, S] {
	return ScaleBias[P, S]{source: source, scale: scale, bias: bias}
}

// Get returns source(point)*scale + bias.
func (n ScaleBias[P, S]) Get(point P) float64 {
	return n.source.Get(point)*n.scale + n.bias
}
