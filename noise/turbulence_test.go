package noise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnoise/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurbulence_Deterministic(t *testing.T) {
	opts := noise.DefaultTurbulenceOptions()
	opts.Seed = 42
	a, err := noise.NewTurbulence[P2, wave](axis[P2](0), opts)
	require.NoError(t, err)
	b, err := noise.NewTurbulence[P2, wave](axis[P2](0), opts)
	require.NoError(t, err)

	for _, p := range samplePoints {
		assert.Equal(t, a.Get(p), b.Get(p))
	}
}

func TestTurbulence_SeedChangesField(t *testing.T) {
	a, err := noise.NewTurbulence[P2, wave](axis[P2](0), noise.DefaultTurbulenceOptions())
	require.NoError(t, err)
	b := a.SetSeed(7)

	assert.Equal(t, noise.DefaultSeed, a.Seed(), "SetSeed leaves the receiver alone")
	assert.Equal(t, uint32(7), b.Seed())
	assert.Equal(t, uint32(7), b.Options().Seed)

	differs := false
	for _, p := range samplePoints {
		if a.Get(p) != b.Get(p) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestTurbulence_ZeroPowerIsIdentity(t *testing.T) {
	opts := noise.DefaultTurbulenceOptions()
	opts.Power = 0
	src := sum[P2]()
	n, err := noise.NewTurbulence[P2, wave](src, opts)
	require.NoError(t, err)

	for _, p := range samplePoints {
		assert.Equal(t, src.Get(p), n.Get(p))
	}
}

func TestTurbulence_DisplacementBoundedByPower(t *testing.T) {
	opts := noise.DefaultTurbulenceOptions()
	opts.Power = 0.25
	opts.Roughness = 5
	n, err := noise.NewTurbulence[P2, wave](axis[P2](0), opts)
	require.NoError(t, err)

	for _, p := range samplePoints {
		assert.LessOrEqual(t, math.Abs(n.Get(p)-p[0]), opts.Power+eps)
	}
}

func TestTurbulenceFunc_SeedsPerAxisAndOctave(t *testing.T) {
	var seeds []uint32
	factory := func(seed uint32) noise.NoiseFn[P2] {
		seeds = append(seeds, seed)
		return wave{seed: seed}
	}
	opts := noise.DefaultTurbulenceOptions()
	_, err := noise.NewTurbulenceFunc[P2](axis[P2](0), opts, factory)
	require.NoError(t, err)

	require.Len(t, seeds, noise.Dim[P2]()*opts.Roughness)
	unique := map[uint32]struct{}{}
	for _, s := range seeds {
		unique[s] = struct{}{}
	}
	assert.Len(t, unique, len(seeds))
}

func TestTurbulence_MatchesFactoryForm(t *testing.T) {
	opts := noise.DefaultTurbulenceOptions()
	opts.Seed = 3
	static, err := noise.NewTurbulence[P2, wave](axis[P2](1), opts)
	require.NoError(t, err)
	erased, err := noise.NewTurbulenceFunc[P2](axis[P2](1), opts, noise.SeededBy[P2, wave]())
	require.NoError(t, err)

	for _, p := range samplePoints {
		assert.Equal(t, static.Get(p), erased.Get(p))
	}
}

func TestTurbulence_Errors(t *testing.T) {
	opts := noise.DefaultTurbulenceOptions()
	opts.Roughness = 0
	_, err := noise.NewTurbulence[P2, wave](axis[P2](0), opts)
	require.ErrorIs(t, err, noise.ErrBadRoughness)

	opts = noise.DefaultTurbulenceOptions()
	opts.Frequency = math.NaN()
	_, err = noise.NewTurbulence[P2, wave](axis[P2](0), opts)
	require.ErrorIs(t, err, noise.ErrNonFinite)

	_, err = noise.NewTurbulenceFunc[P2](axis[P2](0), noise.DefaultTurbulenceOptions(), nil)
	require.ErrorIs(t, err, noise.ErrNilSource)
}
