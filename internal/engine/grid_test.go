package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/testutil"
)

func TestNewGrid_ExampleBounds(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	assert.Equal(t, 494, g.MinX(), "leftmost clay 495 minus margin")
	assert.Equal(t, 507, g.MaxX(), "rightmost clay 506 plus margin")
	assert.Equal(t, 1, g.MinY())
	assert.Equal(t, 13, g.MaxY())
	assert.Equal(t, 14, g.Width())
	assert.Equal(t, 13, g.Height())
	assert.Equal(t, 182, g.Len())
	assert.Equal(t, Bounds{MinX: 494, MaxX: 507, MinY: 1, MaxY: 13}, g.Bounds())
}

func TestNewGrid_StampsClay(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	assert.Equal(t, Clay, g.At(495, 2), "vertical vein top")
	assert.Equal(t, Clay, g.At(500, 7), "horizontal vein interior")
	assert.Equal(t, Clay, g.At(504, 13), "basin corner")
	assert.Equal(t, Sand, g.At(496, 5))
	assert.Equal(t, 34, g.CountClay(), "overlapping vein ends counted once")
}

func TestNewGrid_Spring(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	assert.Equal(t, ir.Point{X: 500, Y: 1}, g.Spring())
	assert.Equal(t, Water, g.At(500, 1))
	assert.Equal(t, 1, g.CountWater())
	assert.False(t, g.Settled())
	assert.Equal(t, 0, g.CountStill())
}

func TestNewGrid_IncludesSpringColumn(t *testing.T) {
	g, err := NewGrid(testutil.IsolatedVeinScan())
	require.NoError(t, err)

	assert.Equal(t, 499, g.MinX(), "spring column 500 minus margin")
	assert.Equal(t, 521, g.MaxX())
	assert.True(t, g.Contains(500, 1))
	assert.Equal(t, Water, g.At(500, 1))
}

func TestNewGrid_Errors(t *testing.T) {
	tests := []struct {
		name string
		scan ir.Scan
		want error
	}{
		{"empty", ir.Scan{}, ErrEmptyScan},
		{"inverted", testutil.NewScan("t", testutil.X(500, 7, 2)), ErrInvertedRange},
		{"wrong group", ir.Scan{X: []ir.Vein{testutil.Y(3, 1, 2)}}, ErrInvalidAxis},
		{"too deep", testutil.NewScan("t", testutil.X(500, 1, math.MaxInt)), ErrRegionTooLarge},
		{"too wide", testutil.NewScan("t", testutil.Y(3, math.MinInt, 500)), ErrRegionTooLarge},
		{"area over cap", testutil.NewScan("t", testutil.X(500, 1, 1<<20), testutil.Y(1, 500, 600)), ErrRegionTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.scan)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, IsBuildError(err))
			assert.True(t, IsBuildError(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestNewGrid_RegionAtCap(t *testing.T) {
	// 3 columns (spring plus margins) by MaxTiles/3 rows.
	rows := MaxTiles / 3
	g, err := NewGrid(testutil.NewScan("t", testutil.X(500, 1, 1), testutil.X(500, rows, rows)))
	require.NoError(t, err)
	assert.Equal(t, 3*rows, g.Len())

	_, err = NewGrid(testutil.NewScan("t", testutil.X(500, 1, 1), testutil.X(500, rows+1, rows+1)))
	assert.ErrorIs(t, err, ErrRegionTooLarge)
}

func TestBuildError_Message(t *testing.T) {
	err := &BuildError{Source: "scan.txt", Vein: testutil.X(500, 7, 2), Err: ErrInvertedRange}
	assert.Equal(t, "build grid from scan.txt: x=500, y=7..2: vein range is inverted", err.Error())

	err = &BuildError{Err: ErrEmptyScan}
	assert.Equal(t, "build grid: scan has no clay veins", err.Error())
}

func TestGrid_SetTracksWater(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	g.Set(496, 5, Water)
	assert.Equal(t, 2, g.CountWater())

	g.Set(496, 5, Water)
	assert.Equal(t, 2, g.CountWater(), "rewriting water is not a new tile")

	g.Set(496, 5, Sand)
	assert.Equal(t, 1, g.CountWater())
}

func TestGrid_OutOfRegionPanics(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func()
	}{
		{"read left", func() { g.At(g.MinX()-1, 5) }},
		{"read below", func() { g.At(500, g.MaxY()+1) }},
		{"write right", func() { g.Set(g.MaxX()+1, 5, Water) }},
		{"write above", func() { g.Set(500, g.MinY()-1, Water) }},
		{"still", func() { g.Still(0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				re, ok := r.(*RegionError)
				require.True(t, ok, "panic value should be *RegionError, got %T", r)
				assert.Contains(t, re.Error(), "outside region")
			}()
			tt.fn()
		})
	}
}

func TestGrid_FullWaterline(t *testing.T) {
	g, err := NewGrid(testutil.ExampleScan())
	require.NoError(t, err)

	// Clay floor: the scan stops immediately on clay at both ends.
	assert.True(t, g.fullWaterline(497, 7))

	// Sand row: the start tile itself is an open edge.
	assert.False(t, g.fullWaterline(497, 6))

	// Water bounded by clay on both sides.
	for x := 496; x <= 500; x++ {
		g.Set(x, 6, Water)
	}
	assert.True(t, g.fullWaterline(498, 6))
	assert.True(t, g.enclosed(498, 6))

	// Water that runs past the right wall onto sand.
	g.Set(502, 2, Water)
	g.Set(503, 2, Water)
	assert.False(t, g.fullWaterline(502, 2))
	assert.False(t, g.enclosed(502, 2))
}

func TestGrid_FullWaterlineAcceptsWaterEdge(t *testing.T) {
	g, err := NewGrid(testutil.LedgeScan())
	require.NoError(t, err)

	// A run of water reaching the margin stops on water, which still
	// counts as a solid end for the full-waterline scan.
	for x := g.MinX(); x <= 500; x++ {
		g.Set(x, 3, Water)
	}
	g.Set(501, 3, Clay)
	assert.True(t, g.fullWaterline(499, 3))
	assert.False(t, g.enclosed(499, 3), "enclosure needs clay on both sides")
}

func TestTile_String(t *testing.T) {
	assert.Equal(t, "sand", Sand.String())
	assert.Equal(t, "clay", Clay.String())
	assert.Equal(t, "water", Water.String())
	assert.Equal(t, "unknown", Tile(9).String())
}

func TestTile_Solid(t *testing.T) {
	assert.True(t, Clay.Solid())
	assert.True(t, Water.Solid())
	assert.False(t, Sand.Solid())
}
