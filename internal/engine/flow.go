package engine

import "github.com/roach88/seep/internal/ir"

// flowStep pops the earliest frontier position and advances it.
//
// Water always tries to fall first:
//   - below the bottom row: drained, nothing to do
//   - sand or water below: fall into it, and remember the current
//     position for backtracking once the column below settles
//   - clay below: spread into sand on either side, no backtrack entry
//
// Returns the popped position and false if the frontier was empty.
func (e *Engine) flowStep() (ir.Point, bool) {
	p, ok := e.frontier.Pop()
	if !ok {
		return ir.Point{}, false
	}

	g := e.grid
	if p.Y >= g.maxY {
		return p, true
	}

	switch g.get(p.X, p.Y+1) {
	case Sand, Water:
		g.put(p.X, p.Y+1, Water)
		e.frontier.Push(ir.Point{X: p.X, Y: p.Y + 1})
		e.backtrack.Push(p)

	case Clay:
		for _, x := range [2]int{p.X - 1, p.X + 1} {
			if g.get(x, p.Y) == Sand {
				g.put(x, p.Y, Water)
				e.frontier.Push(ir.Point{X: x, Y: p.Y})
			}
		}
	}

	return p, true
}
