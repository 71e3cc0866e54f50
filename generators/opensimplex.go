// SPDX-License-Identifier: MIT
// Package: lvnoise/generators
//
// opensimplex.go - OpenSimplex gradient noise backed by
// github.com/ojrac/opensimplex-go.

package generators

import (
	"github.com/katalvlaran/lvnoise/noise"
	"github.com/ojrac/opensimplex-go"
)

// defaultSimplex serves zero-value OpenSimplex generators.
var defaultSimplex = opensimplex.New(int64(noise.DefaultSeed))

// OpenSimplex is seedable gradient noise for 2-, 3- and 4-D points. The zero
// value uses noise.DefaultSeed.
type OpenSimplex[P noise.Vector] struct {
	seed uint32
	gen  opensimplex.Noise
}

var (
	_ noise.Source[[2]float64, OpenSimplex[[2]float64]] = OpenSimplex[[2]float64]{}
	_ noise.Source[[3]float64, OpenSimplex[[3]float64]] = OpenSimplex[[3]float64]{}
	_ noise.Source[[4]float64, OpenSimplex[[4]float64]] = OpenSimplex[[4]float64]{}
)

// NewOpenSimplex returns a generator seeded with seed.
func NewOpenSimplex[P noise.Vector](seed uint32) OpenSimplex[P] {
	return OpenSimplex[P]{seed: seed, gen: opensimplex.New(int64(seed))}
}

// SetSeed returns a generator reseeded with seed.
func (s OpenSimplex[P]) SetSeed(seed uint32) OpenSimplex[P] {
	return NewOpenSimplex[P](seed)
}

// Seed reports the seed.
func (s OpenSimplex[P]) Seed() uint32 { return s.seed }

// Get evaluates the noise at point.
func (s OpenSimplex[P]) Get(point P) float64 {
	gen := s.gen
	if gen == nil {
		gen = defaultSimplex
	}
	v := coords(point)
	switch len(point) {
	case 2:
		return gen.Eval2(v[0], v[1])
	case 3:
		return gen.Eval3(v[0], v[1], v[2])
	default:
		return gen.Eval4(v[0], v[1], v[2], v[3])
	}
}
