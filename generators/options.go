// SPDX-License-Identifier: MIT
// Package: lvnoise/generators
//
// options.go - functional configuration for the Perlin generator.
//
// Option constructors validate eagerly and panic on nonsensical values
// (programmer error); Get never fails.

package generators

import "math"

// Perlin defaults (github.com/aquilax/go-perlin parameters).
const (
	// DefaultPerlinAlpha is the weight divisor applied to each successive octave.
	DefaultPerlinAlpha = 2.0

	// DefaultPerlinBeta is the frequency multiplier between octaves.
	DefaultPerlinBeta = 2.0

	// DefaultPerlinOctaves is the number of summed octaves.
	DefaultPerlinOctaves = 3
)

// DefaultCheckerboardSize gives blocks of side 2^0 = 1.
const DefaultCheckerboardSize uint = 0

const (
	panicAlphaInvalid   = "generators: WithPerlinAlpha: alpha must be finite and positive"
	panicBetaInvalid    = "generators: WithPerlinBeta: beta must be finite and positive"
	panicOctavesInvalid = "generators: WithPerlinOctaves: octaves must be at least 1"
)

// PerlinOption mutates Perlin configuration.
type PerlinOption func(*perlinOptions)

// perlinOptions is the resolved Perlin configuration.
type perlinOptions struct {
	alpha   float64
	beta    float64
	octaves int32
}

// defaultPerlinOptions returns the documented defaults.
func defaultPerlinOptions() perlinOptions {
	return perlinOptions{alpha: DefaultPerlinAlpha, beta: DefaultPerlinBeta, octaves: DefaultPerlinOctaves}
}

// gatherPerlinOptions applies opts over the defaults.
func gatherPerlinOptions(opts ...PerlinOption) perlinOptions {
	o := defaultPerlinOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPerlinAlpha sets the octave weight divisor. Panics unless alpha is
// finite and positive.
func WithPerlinAlpha(alpha float64) PerlinOption {
	if !positiveFinite(alpha) {
		panic(panicAlphaInvalid)
	}

	return func(o *perlinOptions) { o.alpha = alpha }
}

// WithPerlinBeta sets the frequency multiplier between octaves. Panics
// unless beta is finite and positive.
func WithPerlinBeta(beta float64) PerlinOption {
	if !positiveFinite(beta) {
		panic(panicBetaInvalid)
	}

	return func(o *perlinOptions) { o.beta = beta }
}

// WithPerlinOctaves sets the number of octaves. Panics when octaves < 1.
func WithPerlinOctaves(octaves int) PerlinOption {
	if octaves < 1 || octaves > math.MaxInt32 {
		panic(panicOctavesInvalid)
	}

	return func(o *perlinOptions) { o.octaves = int32(octaves) }
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
