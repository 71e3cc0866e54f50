// Package generators_test benchmarks the leaf generators.
package generators_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/generators"
)

var sink float64

func BenchmarkOpenSimplex2D(b *testing.B) {
	g := generators.NewOpenSimplex[P2](1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = g.Get(P2{float64(i) * 0.01, 0.5})
	}
}

func BenchmarkOpenSimplex3D(b *testing.B) {
	g := generators.NewOpenSimplex[P3](1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = g.Get(P3{float64(i) * 0.01, 0.5, 0.25})
	}
}

func BenchmarkPerlin2D(b *testing.B) {
	g := generators.NewPerlin[P2](1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = g.Get(P2{float64(i) * 0.01, 0.5})
	}
}

func BenchmarkCheckerboard(b *testing.B) {
	g := generators.NewCheckerboard[P3](2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = g.Get(P3{float64(i) * 0.01, 0.5, 0.25})
	}
}
