// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// validators.go - configuration checks shared by the constructors.
//
// Every validator returns a plain sentinel; the calling constructor wraps it
// once with its own name via opError. All checks are pure and allocation free.

package noise

import "math"

// validateFinite rejects NaN and ±Inf parameters.
func validateFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// validateBounds ensures lower <= upper with both finite.
func validateBounds(lower, upper float64) error {
	if err := validateFinite(lower, upper); err != nil {
		return err
	}
	if lower > upper {
		return ErrBadBounds
	}

	return nil
}

// validateAscending ensures at least minCount finite inputs in strictly
// ascending order. Complexity: O(n).
func validateAscending(inputs []float64, minCount int) error {
	if len(inputs) < minCount {
		return ErrTooFewPoints
	}
	if err := validateFinite(inputs...); err != nil {
		return err
	}
	for i := 1; i < len(inputs); i++ {
		if !(inputs[i] > inputs[i-1]) {
			return ErrUnsortedPoints
		}
	}

	return nil
}

// isNilFn reports whether fn is a nil interface or a nil Func.
func isNilFn[P any](fn NoiseFn[P]) bool {
	if fn == nil {
		return true
	}
	if f, ok := fn.(Func[P]); ok && f == nil {
		return true
	}

	return false
}
