// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// noisemap.go - grid sampling.

package noisemap

import (
	"math"
	"time"

	"github.com/katalvlaran/lvnoise/noise"
	"go.uber.org/zap"
)

// Map is a row-major grid of sampled values.
type Map struct {
	Width  int
	Height int
	Values []float64

	// Min and Max span the finite values; both are NaN when there are none.
	Min float64
	Max float64

	// NonFinite counts NaN and ±Inf cells.
	NonFinite int
}

// BuildPlane samples fn over opts.Bounds.
// Errors: ErrNilSource, ErrBadSize, ErrBadBounds.
func BuildPlane(fn noise.NoiseFn[[2]float64], opts Options) (*Map, error) {
	if isNil(fn) {
		return nil, opError("BuildPlane", ErrNilSource)
	}

	return build("BuildPlane", opts, func(x, y float64) float64 {
		return fn.Get([2]float64{x, y})
	})
}

// BuildSlice samples fn over opts.Bounds on the plane z = const.
// Errors: ErrNilSource, ErrBadSize, ErrBadBounds (also for a non-finite z).
func BuildSlice(fn noise.NoiseFn[[3]float64], z float64, opts Options) (*Map, error) {
	if isNil(fn) {
		return nil, opError("BuildSlice", ErrNilSource)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, opError("BuildSlice", ErrBadBounds)
	}

	return build("BuildSlice", opts, func(x, y float64) float64 {
		return fn.Get([3]float64{x, y, z})
	})
}

// build fills a Map from sample and logs a summary.
func build(op string, opts Options, sample func(x, y float64) float64) (*Map, error) {
	if err := opts.validate(); err != nil {
		return nil, opError(op, err)
	}
	log := opts.logger()
	start := time.Now()

	b := opts.Bounds
	xStep := (b.XMax - b.XMin) / float64(opts.Width)
	yStep := (b.YMax - b.YMin) / float64(opts.Height)

	m := &Map{
		Width:  opts.Width,
		Height: opts.Height,
		Values: make([]float64, opts.Width*opts.Height),
		Min:    math.NaN(),
		Max:    math.NaN(),
	}
	for row := 0; row < opts.Height; row++ {
		y := b.YMin + float64(row)*yStep
		for col := 0; col < opts.Width; col++ {
			v := sample(b.XMin+float64(col)*xStep, y)
			m.Values[row*opts.Width+col] = v
			m.observe(v)
		}
	}

	log.Debug("noise map built",
		zap.String("op", op),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Float64("min", m.Min),
		zap.Float64("max", m.Max),
		zap.Duration("elapsed", time.Since(start)),
	)
	if m.NonFinite > 0 {
		log.Warn("noise map contains non-finite values",
			zap.String("op", op),
			zap.Int("count", m.NonFinite),
		)
	}

	return m, nil
}

// observe updates the value range with v.
func (m *Map) observe(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		m.NonFinite++
		return
	}
	if math.IsNaN(m.Min) || v < m.Min {
		m.Min = v
	}
	if math.IsNaN(m.Max) || v > m.Max {
		m.Max = v
	}
}

// At returns the value of cell (x, y).
// Errors: ErrOutOfRange.
func (m *Map) At(x, y int) (float64, error) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, opError("At", ErrOutOfRange)
	}

	return m.Values[y*m.Width+x], nil
}

// isNil reports whether fn is a nil interface or a nil noise.Func.
func isNil[P any](fn noise.NoiseFn[P]) bool {
	if fn == nil {
		return true
	}
	f, ok := fn.(noise.Func[P])

	return ok && f == nil
}
