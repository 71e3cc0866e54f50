// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// displace.go - per-axis domain displacement.
//
// Each axis may carry its own displacement function. All of them are sampled
// at the original point and their outputs are added to the matching
// coordinate; the source is then evaluated at the displaced point. An axis
// without displacement holds the Unchanged marker and is copied through.

package noise

// Unchanged marks an axis that Displace leaves untouched.
type Unchanged[P any] struct{}

// Get returns 0 (no displacement).
func (Unchanged[P]) Get(P) float64 { return 0 }

// Displace offsets each coordinate by the output of its own function.
type Displace[P Vector, S NoiseFn[P]] struct {
	source S
	axes   [4]NoiseFn[P]
	active [4]bool
}

// NewDisplace returns a Displace node. axes lists the displacement functions
// in x, y, z, u order; axes not listed, and those given as Unchanged, are left
// as they are.
// Errors: ErrTooManyAxes when len(axes) > len(P), ErrNilSource for nil entries.
func NewDisplace[P Vector, S NoiseFn[P]](source S, axes ...NoiseFn[P]) (Displace[P, S], error) {
	if len(axes) > Dim[P]() {
		return Displace[P, S]{}, opError("Displace", ErrTooManyAxes)
	}
	n := Displace[P, S]{source: source}
	for i := range n.axes {
		n.axes[i] = Unchanged[P]{}
	}
	for i, fn := range axes {
		if isNilFn(fn) {
			return Displace[P, S]{}, opError("Displace", ErrNilSource)
		}
		if _, keep := fn.(Unchanged[P]); keep {
			continue
		}
		n.axes[i], n.active[i] = fn, true
	}

	return n, nil
}

// DisplaceXY displaces both axes of a 2-D point.
func DisplaceXY[S NoiseFn[[2]float64]](source S, x, y NoiseFn[[2]float64]) (Displace[[2]float64, S], error) {
	return NewDisplace[[2]float64](source, x, y)
}

// DisplaceXYZ displaces the three axes of a 3-D point.
func DisplaceXYZ[S NoiseFn[[3]float64]](source S, x, y, z NoiseFn[[3]float64]) (Displace[[3]float64, S], error) {
	return NewDisplace[[3]float64](source, x, y, z)
}

// DisplaceXYZU displaces the four axes of a 4-D point.
func DisplaceXYZU[S NoiseFn[[4]float64]](source S, x, y, z, u NoiseFn[[4]float64]) (Displace[[4]float64, S], error) {
	return NewDisplace[[4]float64](source, x, y, z, u)
}

// Displaced reports which axes carry a displacement function.
func (n Displace[P, S]) Displaced() [4]bool { return n.active }

// Get evaluates the source at the displaced point.
func (n Displace[P, S]) Get(point P) float64 {
	moved := point
	for i := 0; i < len(point); i++ {
		if n.active[i] {
			moved[i] = point[i] + n.axes[i].Get(point)
		}
	}

	return n.source.Get(moved)
}
