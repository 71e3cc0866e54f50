// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// options.go - grid size, sampling bounds and logger.

package noisemap

import (
	"math"

	"go.uber.org/zap"
)

// Grid defaults.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Bounds is the rectangle of input space covered by the grid. Cell (0, 0)
// samples (XMin, YMin); the max edges are exclusive.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultBounds covers [-1, 1] on both axes.
func DefaultBounds() Bounds {
	return Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
}

// Options configures BuildPlane and BuildSlice.
type Options struct {
	Width  int
	Height int
	Bounds Bounds
	Logger *zap.Logger
}

// DefaultOptions returns a 256×256 grid over DefaultBounds with a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Bounds: DefaultBounds(),
		Logger: zap.NewNop(),
	}
}

// validate checks size and bounds.
func (o Options) validate() error {
	if o.Width < 1 || o.Height < 1 {
		return ErrBadSize
	}
	b := o.Bounds
	for _, v := range [...]float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadBounds
		}
	}
	if !(b.XMin < b.XMax) || !(b.YMin < b.YMax) {
		return ErrBadBounds
	}

	return nil
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
