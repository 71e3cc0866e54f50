// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// interp.go - scalar interpolation and easing helpers.

package noise

// lerp interpolates linearly between a (alpha=0) and b (alpha=1).
func lerp(a, b, alpha float64) float64 {
	return a + alpha*(b-a)
}

// cubic performs cubic interpolation between v1 (alpha=0) and v2 (alpha=1)
// using v0 and v3 as the outer neighbours.
func cubic(v0, v1, v2, v3, alpha float64) float64 {
	p := (v3 - v2) - (v0 - v1)
	q := (v0 - v1) - p
	r := v2 - v0

	return ((p*alpha+q)*alpha+r)*alpha + v1
}

// smoothstep maps alpha in [0,1] onto 3a² - 2a³.
func smoothstep(alpha float64) float64 {
	return alpha * alpha * (3 - 2*alpha)
}

// quintic maps alpha in [0,1] onto 6a⁵ - 15a⁴ + 10a³.
func quintic(alpha float64) float64 {
	return alpha * alpha * alpha * (alpha*(alpha*6-15) + 10)
}

// clampf limits v to [lo, hi]. NaN passes through.
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// clampIndex limits i to [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}
