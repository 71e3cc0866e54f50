// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// errors.go - sentinel errors for grid sampling and export.

package noisemap

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a grid with a non-positive width or height.
	ErrBadSize = errors.New("noisemap: width and height must be positive")

	// ErrBadBounds indicates non-finite or empty sampling bounds.
	ErrBadBounds = errors.New("noisemap: bounds must be finite with min < max")

	// ErrNilSource indicates a nil noise function.
	ErrNilSource = errors.New("noisemap: nil source function")

	// ErrOutOfRange indicates a cell index outside the grid.
	ErrOutOfRange = errors.New("noisemap: cell index out of range")
)

// opError prefixes err with the operation name, keeping err matchable.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
