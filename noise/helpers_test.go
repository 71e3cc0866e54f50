package noise_test

import (
	"math"

	"github.com/katalvlaran/lvnoise/noise"
)

// P2, P3 and P4 are the point types used throughout the tests.
type (
	P2 = [2]float64
	P3 = [3]float64
	P4 = [4]float64
)

const eps = 1e-12

// axis returns a function that reports coordinate i of the point.
func axis[P noise.Vector](i int) noise.Func[P] {
	return func(p P) float64 { return p[i] }
}

// sum returns a function that adds every coordinate of the point.
func sum[P noise.Vector]() noise.Func[P] {
	return func(p P) float64 {
		total := 0.0
		for i := 0; i < len(p); i++ {
			total += p[i]
		}

		return total
	}
}

// counter wraps fn and counts its evaluations.
type counter[P any] struct {
	fn    noise.NoiseFn[P]
	calls *int
}

func newCounter[P any](fn noise.NoiseFn[P]) counter[P] {
	return counter[P]{fn: fn, calls: new(int)}
}

func (c counter[P]) Get(p P) float64 {
	*c.calls++

	return c.fn.Get(p)
}

// wave is a cheap seedable source with output in [-1, 1].
type wave struct {
	seed uint32
}

func (w wave) Get(p P2) float64 {
	phase := float64(w.seed%1009) * 0.37
	return math.Sin(p[0]*1.7+phase) * math.Cos(p[1]*1.3-phase)
}

func (w wave) SetSeed(seed uint32) wave {
	w.seed = seed
	return w
}

func (w wave) Seed() uint32 { return w.seed }

// samplePoints is a fixed grid of probe points.
var samplePoints = []P2{
	{0, 0}, {0.5, -0.25}, {1.25, 3.5}, {-2.75, 0.125}, {10.5, -7.25}, {100.125, 42.5},
}
