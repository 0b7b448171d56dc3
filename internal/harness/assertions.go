package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/report"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions checks every assertion against the final grid and
// returns one message per failure.
func EvaluateAssertions(g *engine.Grid, assertions []Assertion) []string {
	var rows []report.RowProfile
	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTile:
			err = assertTile(g, a)
		case AssertRow:
			if rows == nil {
				rows = report.Profile(g)
			}
			err = assertRow(g, rows, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

// tileState names the state of (x, y) in assertion vocabulary.
func tileState(g *engine.Grid, x, y int) string {
	switch g.At(x, y) {
	case engine.Clay:
		return TileClay
	case engine.Water:
		if g.Still(x, y) {
			return TileStill
		}
		return TileFlowing
	default:
		return TileSand
	}
}

func assertTile(g *engine.Grid, a Assertion) error {
	if !g.Contains(a.X, a.Y) {
		return &AssertionError{
			Type:     AssertTile,
			Expected: fmt.Sprintf("(%d,%d) inside the region", a.X, a.Y),
			Actual:   fmt.Sprintf("region is x=%d..%d, y=%d..%d", g.MinX(), g.MaxX(), g.MinY(), g.MaxY()),
		}
	}

	got := tileState(g, a.X, a.Y)
	ok := got == a.Tile
	if a.Tile == TileWater {
		ok = got == TileStill || got == TileFlowing
	}
	if ok {
		return nil
	}
	return &AssertionError{
		Type:     AssertTile,
		Expected: fmt.Sprintf("(%d,%d) is %s", a.X, a.Y, a.Tile),
		Actual:   got,
	}
}

func assertRow(g *engine.Grid, rows []report.RowProfile, a Assertion) error {
	if a.Y < g.MinY() || a.Y > g.MaxY() {
		return &AssertionError{
			Type:     AssertRow,
			Expected: fmt.Sprintf("row %d inside the region", a.Y),
			Actual:   fmt.Sprintf("rows are %d..%d", g.MinY(), g.MaxY()),
		}
	}
	row := rows[a.Y-g.MinY()]

	var mismatches []string
	check := func(name string, want *int, got int) {
		if want != nil && *want != got {
			mismatches = append(mismatches, fmt.Sprintf("%s=%d (want %d)", name, got, *want))
		}
	}
	check("clay", a.Clay, row.Clay)
	check("water", a.Water, row.Water)
	check("still", a.Still, row.Still)

	if len(mismatches) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertRow,
		Expected: fmt.Sprintf("row %d counts", a.Y),
		Actual:   strings.Join(mismatches, ", "),
	}
}
