// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// noise.go - capability contracts shared by every node of a noise tree.
//
// Contract:
//   - NoiseFn.Get is a pure function of the point and the node's configuration
//     (Cache adds a transparent memo slot, nothing else).
//   - Nodes implement Get on value receivers. A value, a pointer to it and an
//     interface holding either therefore evaluate identically.
//   - Seedable.SetSeed returns a reconfigured copy; the receiver is untouched.

package noise

// DefaultSeed is the seed used by seedable nodes that were never seeded.
const DefaultSeed uint32 = 0

// NoiseFn is implemented by every node of a noise tree, leaf or composite.
//
// P is the point type, usually a fixed-size array such as [3]float64. All
// children of a composite share the composite's P.
//
// Get takes a typed point. Sample is the permissive entry point: it accepts
// any coordinates convertible to P (ints, float32, numeric strings) and
// should be used wherever the input is not already a P.
type NoiseFn[P any] interface {
	Get(point P) float64
}

// Seedable is implemented by nodes whose output depends on a seed.
//
// Two otherwise identical values with the same seed must produce identical
// output for every point.
type Seedable[S any] interface {
	// SetSeed returns a copy of the receiver reconfigured for seed.
	SetSeed(seed uint32) S

	// Seed reports the current seed.
	Seed() uint32
}

// Source is a seedable noise function that can be built from its zero value.
// Turbulence uses it to create its own displacement generators.
type Source[P any, F any] interface {
	NoiseFn[P]
	Seedable[F]
}

// Vector is the set of point types understood by the point transformers.
type Vector interface {
	[2]float64 | [3]float64 | [4]float64
}

// Func adapts an ordinary function to NoiseFn.
type Func[P any] func(point P) float64

// Get calls f(point).
func (f Func[P]) Get(point P) float64 { return f(point) }

// Erase stores fn behind the NoiseFn interface so that nodes of different
// concrete types can share one slice or map.
func Erase[P any, F NoiseFn[P]](fn F) NoiseFn[P] { return fn }

// Constant is a leaf that returns the same value for every point.
type Constant[P any] struct {
	value float64
}

// NewConstant returns a Constant leaf valued v.
func NewConstant[P any](v float64) Constant[P] { return Constant[P]{value: v} }

// Value reports the constant output.
func (c Constant[P]) Value() float64 { return c.value }

// Get returns the constant value; the point is ignored.
func (c Constant[P]) Get(P) float64 { return c.value }

// seedZero builds a Source from its zero value.
func seedZero[P any, F Source[P, F]](seed uint32) F {
	var src F

	return src.SetSeed(seed)
}
