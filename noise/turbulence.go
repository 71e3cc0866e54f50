// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// turbulence.go - random per-axis displacement driven by internally owned
// fractal noise.
//
// Turbulence works like Displace, except that it builds its displacement
// functions itself: one fractal (fBm) generator per axis, each octave a
// freshly seeded Source. Parameters:
//   - Frequency: base frequency of the displacement noise.
//   - Power:     scale of the displacement (how far points move).
//   - Roughness: number of octaves per axis (detail of the distortion).
//
// Seeds for every (axis, octave) pair are derived from the turbulence seed
// with xxhash, so neighbouring seeds give unrelated displacement fields.
// Each axis samples its generator at a fixed sub-integer offset from the
// point, which keeps lattice noise off its zero crossings.

package noise

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Turbulence defaults and fBm constants.
const (
	DefaultTurbulenceFrequency = 1.0
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3

	fbmLacunarity  = 2.0
	fbmPersistence = 0.5
)

// turbulenceOffsets are per-axis sample offsets, in 1/65536 units.
var turbulenceOffsets = [4][4]float64{
	{12414, 65124, 31337, 57948},
	{26519, 18128, 60943, 48513},
	{53820, 11213, 44845, 39357},
	{18128, 44845, 12414, 60943},
}

// TurbulenceOptions configures Turbulence.
type TurbulenceOptions struct {
	Seed      uint32
	Frequency float64
	Power     float64
	Roughness int
}

// DefaultTurbulenceOptions returns Seed=DefaultSeed, Frequency=1, Power=1,
// Roughness=3.
func DefaultTurbulenceOptions() TurbulenceOptions {
	return TurbulenceOptions{
		Seed:      DefaultSeed,
		Frequency: DefaultTurbulenceFrequency,
		Power:     DefaultTurbulencePower,
		Roughness: DefaultTurbulenceRoughness,
	}
}

// validate checks finiteness and roughness.
func (o TurbulenceOptions) validate() error {
	if err := validateFinite(o.Frequency, o.Power); err != nil {
		return err
	}
	if o.Roughness < 1 {
		return ErrBadRoughness
	}

	return nil
}

// Turbulence displaces the point with self-owned fractal noise before
// evaluating its source.
type Turbulence[P Vector, S NoiseFn[P], F NoiseFn[P]] struct {
	source  S
	opts    TurbulenceOptions
	factory func(seed uint32) F
	axes    [4]fbm[P, F]
}

// NewTurbulence returns a Turbulence whose displacement octaves are built
// from the zero value of F and seeded with SetSeed.
// Errors: ErrNonFinite, ErrBadRoughness.
func NewTurbulence[P Vector, F Source[P, F], S NoiseFn[P]](source S, opts TurbulenceOptions) (Turbulence[P, S, F], error) {
	return newTurbulence[P, S, F](source, opts, seedZero[P, F])
}

// NewTurbulenceFunc is NewTurbulence for sources built by a factory, e.g. a
// closure over a configured generator.
// Errors: ErrNilSource for a nil factory, ErrNonFinite, ErrBadRoughness.
func NewTurbulenceFunc[P Vector, S NoiseFn[P]](
	source S, opts TurbulenceOptions, factory func(seed uint32) NoiseFn[P],
) (Turbulence[P, S, NoiseFn[P]], error) {
	if factory == nil {
		return Turbulence[P, S, NoiseFn[P]]{}, opError("Turbulence", ErrNilSource)
	}

	return newTurbulence[P, S, NoiseFn[P]](source, opts, factory)
}

func newTurbulence[P Vector, S NoiseFn[P], F NoiseFn[P]](
	source S, opts TurbulenceOptions, factory func(uint32) F,
) (Turbulence[P, S, F], error) {
	if err := opts.validate(); err != nil {
		return Turbulence[P, S, F]{}, opError("Turbulence", err)
	}
	t := Turbulence[P, S, F]{source: source, opts: opts, factory: factory}
	t.build()

	return t, nil
}

// build creates one fBm generator per point axis.
func (t *Turbulence[P, S, F]) build() {
	for axis := 0; axis < Dim[P](); axis++ {
		t.axes[axis] = newFBM[P](t.opts.Seed, axis, t.opts.Frequency, t.opts.Roughness, t.factory)
	}
}

// SetSeed returns a copy of t with every displacement octave reseeded.
func (t Turbulence[P, S, F]) SetSeed(seed uint32) Turbulence[P, S, F] {
	t.opts.Seed = seed
	t.axes = [4]fbm[P, F]{}
	t.build()

	return t
}

// Seed reports the turbulence seed.
func (t Turbulence[P, S, F]) Seed() uint32 { return t.opts.Seed }

// Options reports the configuration.
func (t Turbulence[P, S, F]) Options() TurbulenceOptions { return t.opts }

// Get evaluates the source at the turbulent point.
func (t Turbulence[P, S, F]) Get(point P) float64 {
	moved := point
	for axis := 0; axis < len(point); axis++ {
		sample := point
		for i := 0; i < len(point); i++ {
			sample[i] += turbulenceOffsets[axis][i] / 65536.0
		}
		moved[axis] = point[axis] + t.axes[axis].get(sample)*t.opts.Power
	}

	return t.source.Get(moved)
}

// fbm sums octaves of a source at doubling frequency and halving amplitude,
// normalized so that unit-range octaves give a unit-range sum.
type fbm[P Vector, F NoiseFn[P]] struct {
	octaves   []F
	frequency float64
	scale     float64
}

func newFBM[P Vector, F NoiseFn[P]](seed uint32, axis int, frequency float64, octaves int, factory func(uint32) F) fbm[P, F] {
	f := fbm[P, F]{octaves: make([]F, octaves), frequency: frequency}
	amplitude, total := 1.0, 0.0
	for i := range f.octaves {
		f.octaves[i] = factory(deriveSeed(seed, axis, i))
		total += amplitude
		amplitude *= fbmPersistence
	}
	f.scale = 1 / total

	return f
}

func (f fbm[P, F]) get(point P) float64 {
	for i := 0; i < len(point); i++ {
		point[i] *= f.frequency
	}
	sum, amplitude := 0.0, 1.0
	for _, octave := range f.octaves {
		sum += octave.Get(point) * amplitude
		amplitude *= fbmPersistence
		for i := 0; i < len(point); i++ {
			point[i] *= fbmLacunarity
		}
	}

	return sum * f.scale
}

// deriveSeed mixes the base seed with an axis and octave index.
func deriveSeed(seed uint32, axis, octave int) uint32 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:], seed)
	binary.LittleEndian.PutUint32(buf[4:], uint32(axis))
	binary.LittleEndian.PutUint32(buf[8:], uint32(octave))

	return uint32(xxhash.Sum64(buf[:]))
}
