// Package lvnoise is a toolkit for procedural scalar fields: build a tree of
// small noise functions once, then sample it at any 2-, 3- or 4-D point.
//
// 🚀 What is lvnoise?
//
//	A generics-first composition algebra for coherent noise:
//		• Contracts: NoiseFn[P], Seedable, Source
//		• Combinators: Add, Multiply, Max, Min, Power
//		• Modifiers: Abs, Negate, Clamp, Exponent, ScaleBias, Curve, Terrace
//		• Selectors: Select (windowed, with falloff), Blend
//		• Transformers: TranslatePoint, ScalePoint, RotatePoint, Displace, Turbulence
//		• Cache: single-slot memoization of the last point
//		• Chain: a fluent builder with sticky configuration errors
//
// ✨ Why choose lvnoise?
//
//   - Static dispatch by default: trees built with New* constructors are
//     plain nested structs, no interface calls on the hot path
//   - Erased trees when you need them: any node fits in a NoiseFn[P]
//   - Configuration errors at build time, never during sampling
//   - Safe for concurrent sampling (except Cache, see SyncCache)
//
// Everything is organized under three subpackages:
//
//	noise/      : contracts, combinators, modifiers, selectors, transformers, Chain
//	generators/ : leaves: Checkerboard, OpenSimplex, Perlin
//	noisemap/   : grid sampling, PNG export, region (island) labelling
//
// Quick example:
//
//	hills := generators.NewOpenSimplex[[2]float64](7)
//	tree, err := noise.From[[2]float64](hills).
//		ScalePoint(noise.Uniform(0.5)).
//		Terrace(false, -1, -0.2, 0.3, 1).
//		Build()
//
// A runnable demo lives in examples/render.
//
//	go get github.com/katalvlaran/lvnoise
package lvnoise
