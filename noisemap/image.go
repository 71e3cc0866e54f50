// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// image.go - grayscale export.

package noisemap

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Image renders the map as 8-bit grayscale: values in [-1, 1] map linearly
// onto [0, 255], values outside are clamped and non-finite cells are black.
func (m *Map) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: grayLevel(m.Values[y*m.Width+x])})
		}
	}

	return img
}

// WritePNG encodes Image as PNG into w.
func (m *Map) WritePNG(w io.Writer) error {
	if err := png.Encode(w, m.Image()); err != nil {
		return opError("WritePNG", err)
	}

	return nil
}

// grayLevel maps v in [-1, 1] to [0, 255].
func grayLevel(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))

	return uint8(math.Round((v + 1) * 127.5))
}
