package engine

import "github.com/roach88/seep/internal/ir"

// frontier is the FIFO of positions still falling or spreading.
//
// Plain slice, no locking: the engine is the only owner.
type frontier struct {
	points []ir.Point
}

func newFrontier() *frontier {
	return &frontier{points: make([]ir.Point, 0, 64)}
}

// Push adds p to the back of the queue.
func (q *frontier) Push(p ir.Point) {
	q.points = append(q.points, p)
}

// Pop removes and returns the front point.
// Returns (ir.Point{}, false) if the queue is empty.
func (q *frontier) Pop() (ir.Point, bool) {
	if len(q.points) == 0 {
		return ir.Point{}, false
	}
	p := q.points[0]

	// Reuse the backing array once drained instead of sliding forever.
	if len(q.points) == 1 {
		q.points = q.points[:0]
	} else {
		q.points = q.points[1:]
	}
	return p, true
}

// Len returns the current queue length.
func (q *frontier) Len() int {
	return len(q.points)
}

// stack is the LIFO of positions awaiting backtrack reconciliation.
type stack struct {
	points []ir.Point
}

func newStack() *stack {
	return &stack{points: make([]ir.Point, 0, 64)}
}

// Push adds p to the top of the stack.
func (s *stack) Push(p ir.Point) {
	s.points = append(s.points, p)
}

// Pop removes and returns the most recently pushed point.
// Returns (ir.Point{}, false) if the stack is empty.
func (s *stack) Pop() (ir.Point, bool) {
	n := len(s.points)
	if n == 0 {
		return ir.Point{}, false
	}
	p := s.points[n-1]
	s.points = s.points[:n-1]
	return p, true
}

// Len returns the current stack depth.
func (s *stack) Len() int {
	return len(s.points)
}
