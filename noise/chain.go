// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// chain.go - fluent construction over erased nodes.
//
// Chain wraps a NoiseFn[P] interface value and offers one method per
// combinator, modifier, selector and transformer. Every method returns a new
// Chain wrapping the previous node; the receiver is never modified, so an
// intermediate Chain can be reused as the base of several trees. A base that
// contains a Cache is the exception: the Cache is held by pointer, so every
// tree built on that base shares its memo slot. Call Cache after branching.
//
// Errors are sticky: the first configuration error is kept and every later
// call returns the failed Chain unchanged. A failed Chain passed as an
// operand fails the receiving Chain with the same error. Build reports it.

package noise

import "math"

// Chain is a fluent builder and an evaluable node.
type Chain[P Vector] struct {
	fn  NoiseFn[P]
	err error
}

// From starts a Chain at source. A Chain argument is returned as is.
func From[P Vector](source NoiseFn[P]) Chain[P] {
	fn, err := operand(source)
	if err != nil {
		return Chain[P]{err: opError("From", err)}
	}

	return Chain[P]{fn: fn}
}

// Build returns the finished tree or the first configuration error.
func (c Chain[P]) Build() (NoiseFn[P], error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.fn == nil {
		return nil, opError("Build", ErrNilSource)
	}

	return c.fn, nil
}

// Err reports the first configuration error, if any.
func (c Chain[P]) Err() error { return c.err }

// Get evaluates the tree. A failed or empty Chain returns NaN.
func (c Chain[P]) Get(point P) float64 {
	if c.err != nil || c.fn == nil {
		return math.NaN()
	}

	return c.fn.Get(point)
}

// then applies build to the current node unless the Chain already failed.
func (c Chain[P]) then(build func(NoiseFn[P]) (NoiseFn[P], error)) Chain[P] {
	if c.err != nil {
		return c
	}
	if c.fn == nil {
		return Chain[P]{err: opError("Chain", ErrNilSource)}
	}
	fn, err := build(c.fn)
	if err != nil {
		return Chain[P]{err: err}
	}

	return Chain[P]{fn: fn}
}

// operand unwraps a Chain operand and rejects nil functions.
func operand[P Vector](fn NoiseFn[P]) (NoiseFn[P], error) {
	if isNilFn(fn) {
		return nil, ErrNilSource
	}
	if ch, ok := fn.(Chain[P]); ok {
		if ch.err != nil {
			return nil, ch.err
		}
		if ch.fn == nil {
			return nil, ErrNilSource
		}

		return ch.fn, nil
	}

	return fn, nil
}

// binary joins the current node with other.
func (c Chain[P]) binary(op string, join func(l, r NoiseFn[P]) NoiseFn[P], other NoiseFn[P]) Chain[P] {
	return c.then(func(self NoiseFn[P]) (NoiseFn[P], error) {
		r, err := operand(other)
		if err != nil {
			return nil, opError(op, err)
		}

		return join(self, r), nil
	})
}

// unary wraps the current node without configuration checks.
func (c Chain[P]) unary(wrap func(NoiseFn[P]) NoiseFn[P]) Chain[P] {
	return c.then(func(self NoiseFn[P]) (NoiseFn[P], error) { return wrap(self), nil })
}

// Abs appends an Abs node.
func (c Chain[P]) Abs() Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewAbs[P](s) })
}

// Negate appends a Negate node.
func (c Chain[P]) Negate() Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewNegate[P](s) })
}

// Add sums the current node with other.
func (c Chain[P]) Add(other NoiseFn[P]) Chain[P] {
	return c.binary("Add", func(l, r NoiseFn[P]) NoiseFn[P] { return NewAdd[P](l, r) }, other)
}

// AddConstant adds v to the current node.
func (c Chain[P]) AddConstant(v float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return AddConstant[P](s, v) })
}

// Multiply multiplies the current node by other.
func (c Chain[P]) Multiply(other NoiseFn[P]) Chain[P] {
	return c.binary("Multiply", func(l, r NoiseFn[P]) NoiseFn[P] { return NewMultiply[P](l, r) }, other)
}

// MultiplyConstant multiplies the current node by v.
func (c Chain[P]) MultiplyConstant(v float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return MultiplyConstant[P](s, v) })
}

// Max keeps the larger of the current node and other.
func (c Chain[P]) Max(other NoiseFn[P]) Chain[P] {
	return c.binary("Max", func(l, r NoiseFn[P]) NoiseFn[P] { return NewMax[P](l, r) }, other)
}

// MaxConstant keeps the larger of the current node and v.
func (c Chain[P]) MaxConstant(v float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return MaxConstant[P](s, v) })
}

// Min keeps the smaller of the current node and other.
func (c Chain[P]) Min(other NoiseFn[P]) Chain[P] {
	return c.binary("Min", func(l, r NoiseFn[P]) NoiseFn[P] { return NewMin[P](l, r) }, other)
}

// MinConstant keeps the smaller of the current node and v.
func (c Chain[P]) MinConstant(v float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return MinConstant[P](s, v) })
}

// Power raises the current node to the output of exponent.
func (c Chain[P]) Power(exponent NoiseFn[P]) Chain[P] {
	return c.binary("Power", func(l, r NoiseFn[P]) NoiseFn[P] { return NewPower[P](l, r) }, exponent)
}

// PowerConstant raises the current node to v.
func (c Chain[P]) PowerConstant(v float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return PowerConstant[P](s, v) })
}

// Clamp limits the output to [lower, upper].
func (c Chain[P]) Clamp(lower, upper float64) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewClamp[P](s, lower, upper)
		return n, err
	})
}

// Exponent applies a sign-preserving power.
func (c Chain[P]) Exponent(exponent float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewExponent[P](s, exponent) })
}

// ScaleBias applies v*scale + bias.
func (c Chain[P]) ScaleBias(scale, bias float64) Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewScaleBias[P](s, scale, bias) })
}

// Curve remaps the output through a cubic spline.
func (c Chain[P]) Curve(points ...ControlPoint) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewCurve[P](s, points...)
		return n, err
	})
}

// Terrace remaps the output onto terrace steps.
func (c Chain[P]) Terrace(invert bool, points ...float64) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewTerrace[P](s, invert, points...)
		return n, err
	})
}

// Select switches between the current node and other based on control.
func (c Chain[P]) Select(other, control NoiseFn[P], opts SelectOptions) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		o, err := operand(other)
		if err != nil {
			return nil, opError("Select", err)
		}
		ctl, err := operand(control)
		if err != nil {
			return nil, opError("Select", err)
		}

		n, err := NewSelect[P](s, o, ctl, opts)
		return n, err
	})
}

// Blend mixes the current node with other, weighted by control.
func (c Chain[P]) Blend(other, control NoiseFn[P]) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		o, err := operand(other)
		if err != nil {
			return nil, opError("Blend", err)
		}
		ctl, err := operand(control)
		if err != nil {
			return nil, opError("Blend", err)
		}

		return NewBlend[P](s, o, ctl), nil
	})
}

// TranslatePoint offsets the input point.
func (c Chain[P]) TranslatePoint(offsets Args) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewTranslatePoint[P](s, offsets)
		return n, err
	})
}

// ScalePoint scales the input point.
func (c Chain[P]) ScalePoint(factors Args) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewScalePoint[P](s, factors)
		return n, err
	})
}

// RotatePoint rotates the input point (angles in degrees).
func (c Chain[P]) RotatePoint(angles Args) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewRotatePoint[P](s, angles)
		return n, err
	})
}

// Displace offsets each axis by its own function (see NewDisplace).
func (c Chain[P]) Displace(axes ...NoiseFn[P]) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		unwrapped := make([]NoiseFn[P], len(axes))
		for i, a := range axes {
			fn, err := operand(a)
			if err != nil {
				return nil, opError("Displace", err)
			}
			unwrapped[i] = fn
		}

		n, err := NewDisplace[P](s, unwrapped...)
		return n, err
	})
}

// Turbulence displaces the input point with fractal noise whose octaves are
// built by factory (see SeededBy). Arguments follow NewTurbulenceFunc.
func (c Chain[P]) Turbulence(opts TurbulenceOptions, factory func(seed uint32) NoiseFn[P]) Chain[P] {
	return c.then(func(s NoiseFn[P]) (NoiseFn[P], error) {
		n, err := NewTurbulenceFunc[P](s, opts, factory)
		return n, err
	})
}

// Cache memoizes the last evaluation. The resulting tree must not be
// sampled concurrently.
//
// The memo slot belongs to the returned Chain and every Chain derived from
// it. Trees that branch from a cached Chain share the slot and so must not
// run on different goroutines; branch first and call Cache on each branch to
// give every tree its own slot.
func (c Chain[P]) Cache() Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewCache[P](s) })
}

// SyncCache memoizes the last evaluation behind a mutex. Branches built on
// the returned Chain share the slot safely but evict each other's entries.
func (c Chain[P]) SyncCache() Chain[P] {
	return c.unary(func(s NoiseFn[P]) NoiseFn[P] { return NewSyncCache[P](s) })
}

// SeededBy returns a factory that builds F from its zero value, for use
// with Chain.Turbulence.
func SeededBy[P Vector, F Source[P, F]]() func(seed uint32) NoiseFn[P] {
	return func(seed uint32) NoiseFn[P] { return seedZero[P, F](seed) }
}
