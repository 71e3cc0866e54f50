// Package noise builds procedural scalar fields by composing small noise
// functions into expression trees.
//
// What is a noise tree?
//
//	A noise tree is a value that maps an N-dimensional point (N = 2, 3 or 4)
//	to a float64. Leaves produce coherent noise (see package generators) or
//	constants; composites combine, remap or reposition the outputs of their
//	children. Terrain generators and texture synthesizers assemble a tree once
//	and then sample it at arbitrary points.
//
// Key features:
//   - NoiseFn[P]: the single capability every node satisfies (Get(point) float64).
//   - Arithmetic combinators: Add, Multiply, Max, Min, Power (+ *Constant sugar).
//   - Modifiers: Abs, Negate, Clamp, Exponent, ScaleBias, Curve, Terrace.
//   - Selectors: Select (windowed switch with falloff) and Blend.
//   - Transformers: TranslatePoint, ScalePoint, RotatePoint, Displace, Turbulence.
//   - Cache: single-slot memoization of the last evaluated point.
//   - Chain: a fluent, erased builder over the same node set.
//
// Static vs. erased composition:
//
//	Every composite is generic over its children, so a tree built with the
//	New* constructors is fully monomorphized:
//
//	  sum := noise.NewAdd[[2]float64](a, b)          // Add[[2]float64, A, B]
//	  out, err := noise.NewClamp[[2]float64](sum, -1, 1)
//
//	When heterogeneous storage is needed, any node can be held as a
//	NoiseFn[P] interface value. Chain does this for the whole tree:
//
//	  tree, err := noise.From[[2]float64](leaf).
//	      ScaleBias(0.5, 0.5).
//	      Clamp(0, 1).
//	      Build()
//
// Points:
//
//	Combinators, modifiers, selectors and Cache accept any point type P
//	(e.g. [3]float64, [2]float32, [4]int32). Transformers, Turbulence and
//	Chain operate on Vector = [2]float64 | [3]float64 | [4]float64.
//
// Errors:
//
//	Configuration problems (inverted bounds, too few or unsorted control
//	points, bad roughness, nil children) are reported when the node is built,
//	as sentinel errors matched with errors.Is. Get never fails: NaN and ±Inf
//	propagate under IEEE-754 rules and guarding them is the caller's job.
//
// Concurrency:
//
//	Get only reads immutable configuration, so a tree may be sampled from
//	many goroutines at once, unless it contains a Cache. A Cache mutates its
//	memo slot on every miss; wrap it in a SyncCache or give each worker its
//	own Clone.
package noise
