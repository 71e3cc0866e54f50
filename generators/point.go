// SPDX-License-Identifier: MIT
// Package: lvnoise/generators

package generators

import "github.com/katalvlaran/lvnoise/noise"

// coords copies p into four slots so generators can index z and u without
// knowing the dimension at compile time.
func coords[P noise.Vector](p P) [4]float64 {
	var v [4]float64
	for i := 0; i < len(p); i++ {
		v[i] = p[i]
	}

	return v
}
