package generators_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnoise/generators"
	"github.com/katalvlaran/lvnoise/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	P2 = [2]float64
	P3 = [3]float64
	P4 = [4]float64
)

// probes avoids integer lattice points, where gradient noise is zero.
var probes = []P3{
	{0.13, 0.27, 0.41}, {1.7, -2.3, 0.55}, {12.25, 3.125, -7.75}, {-0.61, 5.43, 2.09}, {100.3, 42.7, 9.1},
}

func TestCheckerboard(t *testing.T) {
	c := generators.NewCheckerboard[P2](generators.DefaultCheckerboardSize)
	assert.Equal(t, 1.0, c.Get(P2{0.5, 0.5}))
	assert.Equal(t, -1.0, c.Get(P2{1.5, 0.5}))
	assert.Equal(t, 1.0, c.Get(P2{1.5, 1.5}))
	assert.Equal(t, -1.0, c.Get(P2{-0.5, 0.5}))

	big := c.SetSize(1)
	assert.Equal(t, uint(1), big.Size())
	assert.Equal(t, uint(0), c.Size(), "SetSize returns a copy")
	assert.Equal(t, 1.0, big.Get(P2{1.5, 0.5}))
	assert.Equal(t, -1.0, big.Get(P2{2.5, 0}))

	c3 := generators.NewCheckerboard[P3](0)
	assert.Equal(t, -1.0, c3.Get(P3{0.5, 0.5, 1.5}))
	c4 := generators.NewCheckerboard[P4](0)
	assert.Equal(t, 1.0, c4.Get(P4{0.5, 1.5, 2.5, 3.5}))
}

func TestOpenSimplex_Deterministic(t *testing.T) {
	a := generators.NewOpenSimplex[P3](42)
	b := generators.NewOpenSimplex[P3](42)
	for _, p := range probes {
		v := a.Get(p)
		assert.Equal(t, v, b.Get(p))
		assert.False(t, math.IsNaN(v))
		assert.LessOrEqual(t, math.Abs(v), 2.0)
	}
}

func TestOpenSimplex_Seeding(t *testing.T) {
	var zero generators.OpenSimplex[P3]
	seeded := generators.NewOpenSimplex[P3](noise.DefaultSeed)
	for _, p := range probes {
		assert.Equal(t, seeded.Get(p), zero.Get(p))
	}

	other := zero.SetSeed(9)
	assert.Equal(t, uint32(9), other.Seed())
	assert.Equal(t, noise.DefaultSeed, zero.Seed())

	differs := false
	for _, p := range probes {
		if other.Get(p) != zero.Get(p) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestOpenSimplex_AllDimensions(t *testing.T) {
	s2 := generators.NewOpenSimplex[P2](1)
	s4 := generators.NewOpenSimplex[P4](1)
	for _, p := range probes {
		assert.False(t, math.IsNaN(s2.Get(P2{p[0], p[1]})))
		assert.False(t, math.IsNaN(s4.Get(P4{p[0], p[1], p[2], p[0] - p[1]})))
	}
}

func TestPerlin_Seeding(t *testing.T) {
	var zero generators.Perlin[P2]
	seeded := generators.NewPerlin[P2](noise.DefaultSeed)
	for _, p := range probes {
		pt := P2{p[0], p[1]}
		assert.Equal(t, seeded.Get(pt), zero.Get(pt))
	}

	reseeded := zero.SetSeed(5)
	assert.Equal(t, uint32(5), reseeded.Seed())
	assert.Equal(t, generators.DefaultPerlinOctaves, reseeded.Octaves())
}

func TestPerlin_Options(t *testing.T) {
	p := generators.NewPerlin[P3](1,
		generators.WithPerlinAlpha(1.5),
		generators.WithPerlinBeta(3),
		generators.WithPerlinOctaves(5),
	)
	assert.Equal(t, 1.5, p.Alpha())
	assert.Equal(t, 3.0, p.Beta())
	assert.Equal(t, 5, p.Octaves())

	// reseeding keeps the options
	q := p.SetSeed(2)
	assert.Equal(t, 1.5, q.Alpha())
	assert.Equal(t, 5, q.Octaves())

	var zero generators.Perlin[P3]
	assert.Equal(t, generators.DefaultPerlinAlpha, zero.Alpha())
	assert.Equal(t, generators.DefaultPerlinBeta, zero.Beta())
}

func TestPerlin_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { generators.WithPerlinAlpha(0) })
	assert.Panics(t, func() { generators.WithPerlinAlpha(math.NaN()) })
	assert.Panics(t, func() { generators.WithPerlinBeta(math.Inf(1)) })
	assert.Panics(t, func() { generators.WithPerlinOctaves(0) })
}

func TestPerlin_FourDimensionsIgnoreU(t *testing.T) {
	p3 := generators.NewPerlin[P3](7)
	p4 := generators.NewPerlin[P4](7)
	for _, p := range probes {
		assert.Equal(t, p3.Get(p), p4.Get(P4{p[0], p[1], p[2], 99.5}))
	}
}

func TestGenerators_DriveTurbulence(t *testing.T) {
	src := generators.NewOpenSimplex[P2](3)
	opts := noise.DefaultTurbulenceOptions()
	opts.Seed = 17

	a, err := noise.NewTurbulence[P2, generators.OpenSimplex[P2]](src, opts)
	require.NoError(t, err)
	b, err := noise.NewTurbulence[P2, generators.OpenSimplex[P2]](src, opts)
	require.NoError(t, err)

	perlin := generators.NewPerlin[P2](0, generators.WithPerlinOctaves(2))
	c := noise.From[P2](src).Turbulence(opts, perlin.Factory())
	require.NoError(t, c.Err())

	for _, p := range probes {
		pt := P2{p[0], p[1]}
		assert.Equal(t, a.Get(pt), b.Get(pt))
		assert.False(t, math.IsNaN(c.Get(pt)))
	}
}
