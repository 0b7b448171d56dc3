package engine

import (
	"log/slog"

	"github.com/roach88/seep/internal/ir"
)

// Margin is the number of sand columns added beyond the extreme clay
// extents on each side, so lateral overflow always has somewhere to fall.
const Margin = 1

// MaxTiles caps the padded region's area. Scans whose veins span more
// are rejected with ErrRegionTooLarge.
const MaxTiles = 1 << 24

// Grid is a rectangular region of tiles stored in row-major order.
//
// The region covers [MinX, MaxX] × [MinY, MaxY]. MinY is the topmost clay
// row and MaxY the bottommost; water below MaxY has drained out of the
// observable region.
//
// INVARIANTS:
//   - width and height never change after NewGrid
//   - the x extent includes ir.SpringX and Margin columns on each side
//   - still is either nil or len(tiles)
type Grid struct {
	tiles []Tile
	still []bool
	water int

	minX  int
	width int
	minY  int
	maxY  int
}

// NewGrid builds the padded region covering every vein in scan, stamps the
// veins to Clay and places the spring.
//
// Returns a *BuildError wrapping ErrEmptyScan when scan has no veins,
// ErrInvertedRange for veins with From > To and ErrRegionTooLarge when the
// region would exceed MaxTiles.
func NewGrid(scan ir.Scan) (*Grid, error) {
	if scan.Len() == 0 {
		return nil, &BuildError{Source: scan.Source, Err: ErrEmptyScan}
	}
	for _, v := range scan.X {
		if v.Axis != ir.AxisX {
			return nil, &BuildError{Source: scan.Source, Vein: v, Err: ErrInvalidAxis}
		}
	}
	for _, v := range scan.Y {
		if v.Axis != ir.AxisY {
			return nil, &BuildError{Source: scan.Source, Vein: v, Err: ErrInvalidAxis}
		}
	}
	for _, v := range scan.Veins() {
		if v.From > v.To {
			return nil, &BuildError{Source: scan.Source, Vein: v, Err: ErrInvertedRange}
		}
	}

	minX, maxX := ir.SpringX, ir.SpringX
	minY, maxY := 0, 0
	first := true
	for _, v := range scan.X {
		minX = min(minX, v.Line)
		maxX = max(maxX, v.Line)
		if first {
			minY, maxY, first = v.From, v.To, false
			continue
		}
		minY = min(minY, v.From)
		maxY = max(maxY, v.To)
	}
	for _, v := range scan.Y {
		minX = min(minX, v.From)
		maxX = max(maxX, v.To)
		if first {
			minY, maxY, first = v.Line, v.Line, false
			continue
		}
		minY = min(minY, v.Line)
		maxY = max(maxY, v.Line)
	}
	if !fits(minX, maxX, minY, maxY) {
		return nil, &BuildError{Source: scan.Source, Err: ErrRegionTooLarge}
	}
	minX -= Margin
	maxX += Margin

	g := &Grid{
		minX:  minX,
		width: maxX - minX + 1,
		minY:  minY,
		maxY:  maxY,
	}
	g.tiles = make([]Tile, g.width*g.Height())

	for _, v := range scan.Veins() {
		for _, p := range v.Points() {
			g.tiles[g.index(p.X, p.Y)] = Clay
		}
	}

	spring := g.Spring()
	if g.get(spring.X, spring.Y) != Clay {
		g.put(spring.X, spring.Y, Water)
	}

	slog.Debug("grid built",
		"source", scan.Source,
		"veins", scan.Len(),
		"min_x", g.minX,
		"max_x", g.MaxX(),
		"min_y", g.minY,
		"max_y", g.maxY,
		"tiles", len(g.tiles),
	)

	return g, nil
}

// fits reports whether the padded region over [minX, maxX] × [minY, maxY]
// stays within MaxTiles. Extents are measured unsigned so that veins near
// the int limits cannot overflow.
func fits(minX, maxX, minY, maxY int) bool {
	spanX := uint64(maxX) - uint64(minX)
	spanY := uint64(maxY) - uint64(minY)
	if spanX >= MaxTiles || spanY >= MaxTiles {
		return false
	}
	return (spanX+1+2*Margin)*(spanY+1) <= MaxTiles
}

// index translates a coordinate into the tile buffer.
// Unchecked: callers stay in bounds by construction.
func (g *Grid) index(x, y int) int {
	return (y-g.minY)*g.width + (x - g.minX)
}

func (g *Grid) get(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

// put writes a tile and keeps the water tally current.
func (g *Grid) put(x, y int, t Tile) {
	i := g.index(x, y)
	old := g.tiles[i]
	if old == t {
		return
	}
	if old == Water {
		g.water--
	}
	if t == Water {
		g.water++
	}
	g.tiles[i] = t
}

// Contains reports whether (x, y) lies inside the region.
func (g *Grid) Contains(x, y int) bool {
	return x >= g.minX && x <= g.MaxX() && y >= g.minY && y <= g.maxY
}

func (g *Grid) mustContain(op string, x, y int) {
	if !g.Contains(x, y) {
		panic(&RegionError{Op: op, X: x, Y: y, MinX: g.minX, MaxX: g.MaxX(), MinY: g.minY, MaxY: g.maxY})
	}
}

// At returns the tile at (x, y).
// Panics with *RegionError outside the region.
func (g *Grid) At(x, y int) Tile {
	g.mustContain("read", x, y)
	return g.get(x, y)
}

// Set writes the tile at (x, y).
// Panics with *RegionError outside the region.
func (g *Grid) Set(x, y int, t Tile) {
	g.mustContain("write", x, y)
	g.put(x, y, t)
}

// Still reports whether (x, y) was classified as still by the last Settle.
func (g *Grid) Still(x, y int) bool {
	g.mustContain("read", x, y)
	if g.still == nil {
		return false
	}
	return g.still[g.index(x, y)]
}

// Settled reports whether a stabilization pass has run.
func (g *Grid) Settled() bool {
	return g.still != nil
}

// CountWater returns the number of tiles currently marked Water,
// flowing and still alike.
func (g *Grid) CountWater() int {
	return g.water
}

// CountStill returns the number of tiles classified as still.
// Zero until a stabilization pass has run.
func (g *Grid) CountStill() int {
	n := 0
	for _, s := range g.still {
		if s {
			n++
		}
	}
	return n
}

// CountClay returns the number of clay tiles.
func (g *Grid) CountClay() int {
	n := 0
	for _, t := range g.tiles {
		if t == Clay {
			n++
		}
	}
	return n
}

// Spring returns the spring coordinate.
func (g *Grid) Spring() ir.Point {
	return ir.Point{X: ir.SpringX, Y: g.minY}
}

// Bounds is the inclusive extent of a region.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Bounds returns the region extent, margin included.
func (g *Grid) Bounds() Bounds {
	return Bounds{MinX: g.minX, MaxX: g.MaxX(), MinY: g.minY, MaxY: g.maxY}
}

// MinX returns the leftmost column, margin included.
func (g *Grid) MinX() int { return g.minX }

// MaxX returns the rightmost column, margin included.
func (g *Grid) MaxX() int { return g.minX + g.width - 1 }

// MinY returns the topmost row.
func (g *Grid) MinY() int { return g.minY }

// MaxY returns the bottommost row.
func (g *Grid) MaxY() int { return g.maxY }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.maxY - g.minY + 1 }

// Len returns the number of tiles in the region.
func (g *Grid) Len() int { return len(g.tiles) }

// fullWaterline reports whether row y is bounded on both sides of x by
// clay or water.
//
// Starting at x, scan left while tiles are Water (stopping at the left
// margin) and classify the tile the scan stops on; then the same to the
// right. A Sand stop tile on either side means an open edge. The scan
// stops on the first non-water tile and classifies it; it is not the same
// as asking whether the row is bounded by clay.
func (g *Grid) fullWaterline(x, y int) bool {
	left := x
	for g.get(left, y) == Water && left > g.minX {
		left--
	}
	if !g.get(left, y).Solid() {
		return false
	}

	right := x
	maxX := g.MaxX()
	for g.get(right, y) == Water && right < maxX {
		right++
	}
	return g.get(right, y).Solid()
}

// enclosed reports whether the run of water through (x, y) ends on clay at
// both sides of its own row.
func (g *Grid) enclosed(x, y int) bool {
	left := x
	for g.get(left, y) == Water && left > g.minX {
		left--
	}
	if g.get(left, y) != Clay {
		return false
	}

	right := x
	maxX := g.MaxX()
	for g.get(right, y) == Water && right < maxX {
		right++
	}
	return g.get(right, y) == Clay
}
