// Package noisemap samples 2-D noise trees on regular grids and exports the
// result as grayscale images.
//
// A Map is a row-major grid of float64 values taken from a rectangle of
// input space:
//
//	m, err := noisemap.BuildPlane(tree, noisemap.DefaultOptions())
//	if err != nil { ... }
//	err = m.WritePNG(file)
//
// BuildPlane samples a NoiseFn[[2]float64]; BuildSlice samples a
// NoiseFn[[3]float64] on the plane z = const. Sampling is sequential and
// calls Get once per cell, so trees containing a noise.Cache are fine.
//
// Logging:
//
//	Options.Logger (zap) receives one debug record per map with its size,
//	value range and timing, and a warning when non-finite values were
//	produced. A nil logger is replaced by zap.NewNop().
package noisemap
