package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
)

// Width of the y label column, separator included.
const (
	gutter       = 5
	gutterFiller = "     "
)

// Glyphs used in renderings.
const (
	GlyphSand   = ' '
	GlyphClay   = '#'
	GlyphWater  = '~'
	GlyphFlow   = '|'
	GlyphSpring = '+'
)

// Options controls rendering.
type Options struct {
	// ShowFlow draws water that is not still as '|'. Before a
	// stabilization pass every water tile counts as flowing.
	ShowFlow bool
}

// Render writes the text drawing of g to w.
func Render(w io.Writer, g *engine.Grid, opts Options) error {
	bw := bufio.NewWriter(w)
	minX, maxX := g.MinX(), g.MaxX()

	rulers := []func(x int) byte{
		func(x int) byte { return digit(x / 100) },
		func(x int) byte { return digit(x / 10) },
		func(x int) byte { return digit(x) },
		func(x int) byte {
			if x == ir.SpringX {
				return GlyphSpring
			}
			return ' '
		},
	}
	for _, ruler := range rulers {
		bw.WriteString(gutterFiller)
		for x := minX; x <= maxX; x++ {
			bw.WriteByte(ruler(x))
		}
		bw.WriteByte('\n')
	}

	for y := g.MinY(); y <= g.MaxY(); y++ {
		fmt.Fprintf(bw, "%4d ", y)
		for x := minX; x <= maxX; x++ {
			bw.WriteByte(glyph(g, x, y, opts))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write rendering: %w", err)
	}
	return nil
}

// String returns the drawing of g.
func String(g *engine.Grid, opts Options) string {
	var b strings.Builder
	_ = Render(&b, g, opts) // strings.Builder never fails
	return b.String()
}

func glyph(g *engine.Grid, x, y int, opts Options) byte {
	switch g.At(x, y) {
	case engine.Clay:
		return GlyphClay
	case engine.Water:
		if opts.ShowFlow && !g.Still(x, y) {
			return GlyphFlow
		}
		return GlyphWater
	default:
		return GlyphSand
	}
}

// digit returns the last decimal digit of n as a character.
func digit(n int) byte {
	if n < 0 {
		n = -n
	}
	return byte('0' + n%10)
}
