package scan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/seep/internal/ir"
)

// span is one axis of a structured vein: either a single coordinate
// (the fixed axis) or an inclusive range (the spanned axis).
type span struct {
	from, to int
	isRange  bool
	set      bool

	line, column int
}

// parseRange parses "A..B".
func parseRange(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "..")
	if !ok {
		return 0, 0, fmt.Errorf("expected range A..B, got %q", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q", a)
	}
	to, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q", b)
	}
	return from, to, nil
}

// toVein combines the x and y spans of one structured entry.
// Exactly one side must be a single coordinate and the other a range.
func toVein(x, y span) (ir.Vein, error) {
	switch {
	case !x.set || !y.set:
		return ir.Vein{}, fmt.Errorf("vein needs both x and y")
	case !x.isRange && y.isRange:
		return ir.Vein{Axis: ir.AxisX, Line: x.from, From: y.from, To: y.to}, nil
	case x.isRange && !y.isRange:
		return ir.Vein{Axis: ir.AxisY, Line: y.from, From: x.from, To: x.to}, nil
	case x.isRange:
		return ir.Vein{}, fmt.Errorf("vein cannot span both axes")
	default:
		return ir.Vein{}, fmt.Errorf("vein needs a range on one axis")
	}
}
