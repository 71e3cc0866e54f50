package noisemap_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/generators"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// ExampleBuildPlane samples a checkerboard on a small grid.
func ExampleBuildPlane() {
	opts := noisemap.DefaultOptions()
	opts.Width, opts.Height = 4, 1
	opts.Bounds = noisemap.Bounds{XMin: 0, XMax: 4, YMin: 0, YMax: 1}

	m, err := noisemap.BuildPlane(generators.NewCheckerboard[[2]float64](0), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Values, m.Min, m.Max)
	// Output: [1 -1 1 -1] -1 1
}
