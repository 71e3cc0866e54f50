// Package generators provides the leaf functions of a noise tree: coherent
// noise sources and simple patterns that composites in package noise combine,
// remap and reposition.
//
// What is provided?
//
//	Checkerboard: a pattern of unit-valued blocks (+1 / -1) of side 2^size.
//	OpenSimplex:  gradient noise in 2, 3 and 4 dimensions
//	              (github.com/ojrac/opensimplex-go).
//	Perlin:       multi-octave Perlin noise in 2 and 3 dimensions
//	              (github.com/aquilax/go-perlin); 4-D points ignore u.
//
// Generators are generic over the point type (noise.Vector), so the same
// generator type serves 2-, 3- and 4-D trees:
//
//	terrain := generators.NewOpenSimplex[[2]float64](42)
//	v := terrain.Get([2]float64{0.5, 1.25})
//
// Seeding:
//
//	OpenSimplex and Perlin satisfy noise.Source: the zero value is ready to
//	use with seed noise.DefaultSeed, and SetSeed returns a reseeded copy.
//	Either can therefore drive noise.Turbulence directly:
//
//	  t, err := noise.NewTurbulence[[2]float64, generators.OpenSimplex[[2]float64]](
//	      terrain, noise.DefaultTurbulenceOptions())
//
// Concurrency:
//
//	Generators hold immutable tables after construction; Get is safe for
//	concurrent use.
package generators
