// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// errors.go - sentinel errors for the noise package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach the operation name with %w, e.g. "Clamp: noise: lower bound exceeds upper bound".
//   - Get never returns or panics on numeric conditions; NaN and ±Inf propagate.
//   - Panics are reserved for programmer errors in argument constructors (Axes).

package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource indicates a nil child function was supplied to a constructor.
	ErrNilSource = errors.New("noise: nil source function")

	// ErrBadBounds indicates a lower bound greater than its upper bound
	// (Clamp bounds, Select window edges).
	ErrBadBounds = errors.New("noise: lower bound exceeds upper bound")

	// ErrNonFinite indicates a configuration parameter is NaN or ±Inf.
	ErrNonFinite = errors.New("noise: parameter must be finite")

	// ErrTooFewPoints indicates a Curve or Terrace received fewer control points
	// than its interpolation needs.
	ErrTooFewPoints = errors.New("noise: too few control points")

	// ErrUnsortedPoints indicates control points that are not strictly ascending
	// by input (duplicates included).
	ErrUnsortedPoints = errors.New("noise: control points must be strictly ascending")

	// ErrBadFalloff indicates an unknown Select falloff shape.
	ErrBadFalloff = errors.New("noise: unknown falloff")

	// ErrBadRoughness indicates a Turbulence roughness below one octave.
	ErrBadRoughness = errors.New("noise: roughness must be at least 1")

	// ErrTooManyAxes indicates more displacement functions than point axes.
	ErrTooManyAxes = errors.New("noise: more displacement axes than point dimensions")

	// ErrArgCount indicates per-axis arguments with fewer than 1 or more than 4 values.
	ErrArgCount = errors.New("noise: transformer args need 1 to 4 values")

	// ErrDimension indicates a coordinate count that does not match the point type.
	ErrDimension = errors.New("noise: coordinate count does not match point dimension")
)

// opError prefixes err with the constructor name, keeping err matchable.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
