package engine

import "github.com/roach88/seep/internal/ir"

// backtrackStep pops the most recent backtrack entry and reconciles it.
//
// Entries touching the region boundary cannot pool and are discarded. If
// the row below is a full waterline, the current row fills sideways: each
// sweep marks water until it meets clay (in the row or beneath it) or the
// margin. A sweep that stops on anything but clay has found an escape, so
// the stop tile becomes water and re-enters the frontier.
//
// The full-waterline check is repeated before the right sweep because the
// left sweep may have changed the row. Afterwards one flow step runs if
// the frontier is non-empty, so escaped overflow starts falling at once.
//
// Returns the popped position and false if the stack was empty.
func (e *Engine) backtrackStep() (ir.Point, bool) {
	p, ok := e.backtrack.Pop()
	if !ok {
		return ir.Point{}, false
	}

	g := e.grid
	x, y := p.X, p.Y
	maxX := g.MaxX()
	if y >= g.maxY || y <= g.minY || x <= g.minX || x >= maxX {
		return p, true
	}

	if g.fullWaterline(x, y+1) && g.get(x-1, y) != Clay {
		left := x
		for g.get(left, y+1) != Clay && g.get(left, y) != Clay && left > g.minX {
			g.put(left, y, Water)
			left--
		}
		if g.get(left, y) != Clay {
			g.put(left, y, Water)
			e.frontier.Push(ir.Point{X: left, Y: y})
		}
	}

	if g.fullWaterline(x, y+1) && g.get(x+1, y) != Clay {
		right := x
		for g.get(right, y+1) != Clay && g.get(right, y) != Clay && right < maxX {
			g.put(right, y, Water)
			right++
		}
		if g.get(right, y) != Clay {
			g.put(right, y, Water)
			e.frontier.Push(ir.Point{X: right, Y: y})
		}
	}

	if e.frontier.Len() > 0 {
		e.flowStep()
	}

	return p, true
}
