// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// combiners.go - binary nodes that evaluate two children at the same point
// and combine the outputs.
//
// Add, Multiply, Max and Min are commutative up to floating-point rounding;
// Power is not. The *Constant helpers wrap a literal in a Constant leaf
// first, they add no semantics of their own.

package noise

import "math"

// Add outputs left + right.
type Add[P any, L NoiseFn[P], R NoiseFn[P]] struct {
	left  L
	right R
}

// NewAdd returns a node summing left and right.
func NewAdd[P any, L NoiseFn[P], R NoiseFn[P]](left L, right R) Add[P, L, R] {
	return Add[P, L, R]{left: left, right: right}
}

// Get returns left(point) + right(point).
func (n Add[P, L, R]) Get(point P) float64 {
	return n.left.Get(point) + n.right.Get(point)
}

// AddConstant returns source + v.
func AddConstant[P any, S NoiseFn[P]](source S, v float64) Add[P, S, Constant[P]] {
	return NewAdd[P](source, NewConstant[P](v))
}

// Multiply outputs left * right.
type Multiply[P any, L NoiseFn[P], R NoiseFn[P]] struct {
	left  L
	right R
}

// NewMultiply returns a node multiplying left by right.
func NewMultiply[P any, L NoiseFn[P], R NoiseFn[P]](left L, right R) Multiply[P, L, R] {
	return Multiply[P, L, R]{left: left, right: right}
}

// Get returns left(point) * right(point).
func (n Multiply[P, L, R]) Get(point P) float64 {
	return n.left.Get(point) * n.right.Get(point)
}

// MultiplyConstant returns source * v.
func MultiplyConstant[P any, S NoiseFn[P]](source S, v float64) Multiply[P, S, Constant[P]] {
	return NewMultiply[P](source, NewConstant[P](v))
}

// Max outputs the larger of left and right.
type Max[P any, L NoiseFn[P], R NoiseFn[P]] struct {
	left  L
	right R
}

// NewMax returns a node selecting the larger output.
func NewMax[P any, L NoiseFn[P], R NoiseFn[P]](left L, right R) Max[P, L, R] {
	return Max[P, L, R]{left: left, right: right}
}

// Get returns math.Max(left(point), right(point)); NaN wins.
func (n Max[P, L, R]) Get(point P) float64 {
	return math.Max(n.left.Get(point), n.right.Get(point))
}

// MaxConstant returns max(source, v).
func MaxConstant[P any, S NoiseFn[P]](source S, v float64) Max[P, S, Constant[P]] {
	return NewMax[P](source, NewConstant[P](v))
}

// Min outputs the smaller of left and right.
type Min[P any, L NoiseFn[P], R NoiseFn[P]] struct {
	left  L
	right R
}

// NewMin returns a node selecting the smaller output.
func NewMin[P any, L NoiseFn[P], R NoiseFn[P]](left L, right R) Min[P, L, R] {
	return Min[P, L, R]{left: left, right: right}
}

// Get returns math.Min(left(point), right(point)); NaN wins.
func (n Min[P, L, R]) Get(point P) float64 {
	return math.Min(n.left.Get(point), n.right.Get(point))
}

// MinConstant returns min(source, v).
func MinConstant[P any, S NoiseFn[P]](source S, v float64) Min[P, S, Constant[P]] {
	return NewMin[P](source, NewConstant[P](v))
}

// Power outputs left raised to right.
type Power[P any, L NoiseFn[P], R NoiseFn[P]] struct {
	base     L
	exponent R
}

// NewPower returns a node computing base^exponent with math.Pow; a negative
// base with a fractional exponent yields NaN.
func NewPower[P any, L NoiseFn[P], R NoiseFn[P]](base L, exponent R) Power[P, L, R] {
	return Power[P, L, R]{base: base, exponent: exponent}
}

// Get returns math.Pow(base(point), exponent(point)).
func (n Power[P, L, R]) Get(point P) float64 {
	return math.Pow(n.base.Get(point), n.exponent.Get(point))
}

// PowerConstant returns source^v.
func PowerConstant[P any, S NoiseFn[P]](source S, v float64) Power[P, S, Constant[P]] {
	return NewPower[P](source, NewConstant[P](v))
}
