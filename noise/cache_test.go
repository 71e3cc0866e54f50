package noise_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvnoise/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_RepeatedPointHitsSlot(t *testing.T) {
	src := newCounter[P2](axis[P2](0))
	c := noise.NewCache[P2](src)

	p := P2{1.5, 2}
	assert.Equal(t, 1.5, c.Get(p))
	assert.Equal(t, 1.5, c.Get(p))
	assert.Equal(t, 1, *src.calls)

	// a different point replaces the slot
	assert.Equal(t, 3.0, c.Get(P2{3, 0}))
	assert.Equal(t, 2, *src.calls)
	assert.Equal(t, 1.5, c.Get(p))
	assert.Equal(t, 3, *src.calls)
}

func TestCache_ExactComparison(t *testing.T) {
	src := newCounter[P2](axis[P2](0))
	c := noise.NewCache[P2](src)

	c.Get(P2{0, 0})
	c.Get(P2{math.Copysign(0, -1), 0}) // -0 is a different point
	assert.Equal(t, 2, *src.calls)

	nan := P2{math.NaN(), 1}
	c.Get(nan)
	c.Get(nan) // same bits
	assert.Equal(t, 3, *src.calls)

	c.Get(P2{1e-300, 1})
	c.Get(P2{0, 1})
	assert.Equal(t, 5, *src.calls)
}

func TestCache_ExactComparisonFloat32(t *testing.T) {
	calls := 0
	src := noise.Func[[2]float32](func(p [2]float32) float64 {
		calls++
		return 1 / float64(p[0])
	})
	c := noise.NewCache[[2]float32](src)

	negZero := float32(math.Copysign(0, -1))
	assert.True(t, math.IsInf(c.Get([2]float32{0, 1}), 1))
	assert.True(t, math.IsInf(c.Get([2]float32{negZero, 1}), -1), "-0 must not hit the +0 slot")
	assert.Equal(t, 2, calls)

	nan := [2]float32{float32(math.NaN()), 1}
	c.Get(nan)
	c.Get(nan)
	assert.Equal(t, 3, calls)

	c3 := noise.NewCache[[3]float32](noise.Func[[3]float32](func([3]float32) float64 {
		calls++
		return 0
	}))
	c3.Get([3]float32{1, 2, 3})
	c3.Get([3]float32{1, 2, 3})
	assert.Equal(t, 4, calls)
}

func TestCache_ResetAndClone(t *testing.T) {
	src := newCounter[P2](axis[P2](1))
	c := noise.NewCache[P2](src)
	p := P2{0, 4}

	c.Get(p)
	c.Reset()
	c.Get(p)
	assert.Equal(t, 2, *src.calls)

	clone := c.Clone()
	assert.Equal(t, 4.0, clone.Get(p))
	assert.Equal(t, 3, *src.calls, "clone starts empty")
	assert.Same(t, src.calls, c.Source().calls)
}

func TestCache_NonFloatPoint(t *testing.T) {
	calls := 0
	src := noise.Func[[2]int](func(p [2]int) float64 {
		calls++
		return float64(p[0] * p[1])
	})
	c := noise.NewCache[[2]int](src)

	assert.Equal(t, 6.0, c.Get([2]int{2, 3}))
	assert.Equal(t, 6.0, c.Get([2]int{2, 3}))
	assert.Equal(t, 1, calls)
}

func TestCache_TransparentInsideTree(t *testing.T) {
	inner := noise.NewScaleBias[P2](axis[P2](0), 2, 1)
	cached := noise.NewAdd[P2](noise.NewCache[P2](inner), noise.NewConstant[P2](1))
	plain := noise.NewAdd[P2](inner, noise.NewConstant[P2](1))

	for _, p := range samplePoints {
		assert.Equal(t, plain.Get(p), cached.Get(p))
		assert.Equal(t, plain.Get(p), cached.Get(p))
	}
}

func TestSyncCache_Concurrent(t *testing.T) {
	c := noise.NewSyncCache[P2](sum[P2]())

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan P2, workers*100)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p := P2{float64(w), float64(i % 7)}
				if c.Get(p) != p[0]+p[1] {
					errs <- p
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	var bad []P2
	for p := range errs {
		bad = append(bad, p)
	}
	require.Empty(t, bad)
}
