package engine

import "log/slog"

// Settle runs the stabilization pass and returns the still-water count.
//
// A water tile is still when the run of water through it ends on clay at
// both sides of its row and the row beneath is a full waterline. Water
// that only flowed through keeps counting toward CountWater but not toward
// CountStill.
//
// The overlay is rebuilt from tile state on every call, so settling twice
// gives the same answer. Returns ErrNotSettled if work is still pending.
func (e *Engine) Settle() (int, error) {
	if e.Pending() {
		return 0, ErrNotSettled
	}

	g := e.grid
	if g.still == nil {
		g.still = make([]bool, len(g.tiles))
	}

	n := 0
	maxX := g.MaxX()
	for y := g.minY; y <= g.maxY; y++ {
		for x := g.minX; x <= maxX; x++ {
			i := g.index(x, y)
			still := y < g.maxY &&
				g.tiles[i] == Water &&
				g.enclosed(x, y) &&
				g.fullWaterline(x, y+1)
			g.still[i] = still
			if still {
				n++
			}
		}
	}

	slog.Debug("stabilization complete",
		"water", g.water,
		"still", n,
	)

	return n, nil
}
