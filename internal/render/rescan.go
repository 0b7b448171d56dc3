package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
)

// Picture is the tile content recovered from a rendering.
// Point slices are in row-major order.
type Picture struct {
	Bounds  engine.Bounds
	Clay    []ir.Point
	Water   []ir.Point // every water tile, flowing or not
	Flowing []ir.Point // tiles drawn as '|'
}

// Rescan parses a rendering produced by Render.
//
// The column of each character is recovered from the spring marker, so
// the ruler digits only need to be present, not decoded.
func Rescan(text string) (Picture, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 5 {
		return Picture{}, fmt.Errorf("rescan: need 4 header lines and at least one row, got %d lines", len(lines))
	}

	ones, marker := lines[2], lines[3]
	width := len(ones) - gutter
	if width <= 0 {
		return Picture{}, fmt.Errorf("rescan: line 3: empty ruler")
	}
	spring := strings.IndexByte(marker, GlyphSpring)
	if spring < gutter {
		return Picture{}, fmt.Errorf("rescan: line 4: missing spring marker")
	}
	minX := ir.SpringX - (spring - gutter)
	if ones[gutter] != digit(minX) {
		return Picture{}, fmt.Errorf("rescan: line 3: ruler starts at %q, marker implies x=%d", ones[gutter], minX)
	}

	var pic Picture
	pic.Bounds.MinX = minX
	pic.Bounds.MaxX = minX + width - 1

	for i, line := range lines[4:] {
		lineNo := i + 5
		if len(line) != gutter+width {
			return Picture{}, fmt.Errorf("rescan: line %d: width %d, want %d", lineNo, len(line)-gutter, width)
		}
		y, err := strconv.Atoi(strings.TrimSpace(line[:gutter-1]))
		if err != nil {
			return Picture{}, fmt.Errorf("rescan: line %d: bad row label %q", lineNo, line[:gutter-1])
		}
		if i == 0 {
			pic.Bounds.MinY = y
		} else if y != pic.Bounds.MaxY+1 {
			return Picture{}, fmt.Errorf("rescan: line %d: row %d follows row %d", lineNo, y, pic.Bounds.MaxY)
		}
		pic.Bounds.MaxY = y

		for col := 0; col < width; col++ {
			p := ir.Point{X: minX + col, Y: y}
			switch c := line[gutter+col]; c {
			case GlyphSand:
			case GlyphClay:
				pic.Clay = append(pic.Clay, p)
			case GlyphWater:
				pic.Water = append(pic.Water, p)
			case GlyphFlow:
				pic.Water = append(pic.Water, p)
				pic.Flowing = append(pic.Flowing, p)
			default:
				return Picture{}, fmt.Errorf("rescan: line %d: unknown tile %q at x=%d", lineNo, c, p.X)
			}
		}
	}

	return pic, nil
}
