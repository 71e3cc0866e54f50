// SPDX-License-Identifier: MIT
// Package: lvnoise/generators
//
// perlin.go - multi-octave Perlin noise backed by github.com/aquilax/go-perlin.
//
// go-perlin sums `octaves` layers; each layer multiplies the frequency by
// beta and divides the amplitude by alpha. It provides 2-D and 3-D noise, so
// 4-D points are sampled on their first three axes.

package generators

import (
	"github.com/aquilax/go-perlin"
	"github.com/katalvlaran/lvnoise/noise"
)

// defaultPerlin serves zero-value Perlin generators.
var defaultPerlin = perlin.NewPerlin(DefaultPerlinAlpha, DefaultPerlinBeta, DefaultPerlinOctaves, int64(noise.DefaultSeed))

// Perlin is seedable multi-octave Perlin noise. The zero value uses the
// default options and noise.DefaultSeed.
type Perlin[P noise.Vector] struct {
	seed uint32
	opts perlinOptions
	gen  *perlin.Perlin
}

var (
	_ noise.Source[[2]float64, Perlin[[2]float64]] = Perlin[[2]float64]{}
	_ noise.Source[[3]float64, Perlin[[3]float64]] = Perlin[[3]float64]{}
	_ noise.Source[[4]float64, Perlin[[4]float64]] = Perlin[[4]float64]{}
)

// NewPerlin returns a generator seeded with seed. Options panic on
// nonsensical values (see WithPerlinAlpha).
func NewPerlin[P noise.Vector](seed uint32, opts ...PerlinOption) Perlin[P] {
	o := gatherPerlinOptions(opts...)

	return Perlin[P]{seed: seed, opts: o, gen: perlin.NewPerlin(o.alpha, o.beta, o.octaves, int64(seed))}
}

// SetSeed returns a copy reseeded with seed, keeping the options.
func (p Perlin[P]) SetSeed(seed uint32) Perlin[P] {
	o := p.options()
	p.seed, p.opts = seed, o
	p.gen = perlin.NewPerlin(o.alpha, o.beta, o.octaves, int64(seed))

	return p
}

// Seed reports the seed.
func (p Perlin[P]) Seed() uint32 { return p.seed }

// Alpha reports the octave weight divisor.
func (p Perlin[P]) Alpha() float64 { return p.options().alpha }

// Beta reports the frequency multiplier.
func (p Perlin[P]) Beta() float64 { return p.options().beta }

// Octaves reports the number of octaves.
func (p Perlin[P]) Octaves() int { return int(p.options().octaves) }

// Factory returns a seed factory producing copies of p, for
// noise.NewTurbulenceFunc and noise.Chain.Turbulence.
func (p Perlin[P]) Factory() func(seed uint32) noise.NoiseFn[P] {
	return func(seed uint32) noise.NoiseFn[P] { return p.SetSeed(seed) }
}

// options returns the configuration, filling in defaults for the zero value.
func (p Perlin[P]) options() perlinOptions {
	if p.opts.octaves == 0 {
		return defaultPerlinOptions()
	}

	return p.opts
}

// Get evaluates the noise at point.
func (p Perlin[P]) Get(point P) float64 {
	gen := p.gen
	if gen == nil {
		gen = defaultPerlin
	}
	v := coords(point)
	if len(point) == 2 {
		return gen.Noise2D(v[0], v[1])
	}

	return gen.Noise3D(v[0], v[1], v[2])
}
