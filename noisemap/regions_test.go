package noisemap_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvnoise/noisemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapOf builds a Map directly from rows.
func mapOf(rows [][]float64) *noisemap.Map {
	m := &noisemap.Map{Width: len(rows[0]), Height: len(rows)}
	for _, r := range rows {
		m.Values = append(m.Values, r...)
	}

	return m
}

func regionSizes(regions [][]int) []int {
	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Ints(sizes)

	return sizes
}

// Grid (land >= 0.5):
//
//	. # # .
//	# # . .
//	. . # #
func TestRegions_Conn4(t *testing.T) {
	m := mapOf([][]float64{
		{0, 0.9, 0.7, 0.1},
		{0.5, 0.6, 0.2, -1},
		{-0.3, 0, 0.8, 1},
	})
	regions := m.Regions(noisemap.RegionOptions{Threshold: 0.5, Conn: noisemap.Conn4})
	require.Len(t, regions, 2)
	assert.Equal(t, []int{2, 4}, regionSizes(regions))
	assert.Equal(t, 1, regions[0][0], "regions start at their first cell")
}

// Diagonal-only contact joins under Conn8.
func TestRegions_Conn8(t *testing.T) {
	m := mapOf([][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	opts := noisemap.RegionOptions{Threshold: 1, Conn: noisemap.Conn8}
	regions := m.Regions(opts)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 9)

	opts.Conn = noisemap.Conn4
	assert.Len(t, m.Regions(opts), 9)
}

func TestRegions_SkipsNonFinite(t *testing.T) {
	m := mapOf([][]float64{
		{1, math.NaN(), 1},
		{math.Inf(1), math.Inf(1), math.Inf(1)},
	})
	regions := m.Regions(noisemap.DefaultRegionOptions())
	assert.Equal(t, []int{1, 1}, regionSizes(regions))
}

func TestRegions_AllWater(t *testing.T) {
	m := mapOf([][]float64{{-1, -0.5}, {-0.25, -0.75}})
	assert.Empty(t, m.Regions(noisemap.DefaultRegionOptions()))
}

func TestMap_Coordinate(t *testing.T) {
	m := mapOf([][]float64{{0, 0, 0}, {0, 0, 0}})
	x, y := m.Coordinate(4)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}
