package testutil

import "github.com/roach88/seep/internal/ir"

// ExampleScanText is the classic narrow-basin cross-section.
// Simulated from the spring it touches 57 tiles, 29 of them still.
const ExampleScanText = `x=495, y=2..7
y=7, x=495..501
x=501, y=3..7
x=498, y=2..4
x=506, y=1..2
x=498, y=10..13
x=504, y=10..13
y=13, x=498..504
`

// Expected counts for the fixtures below.
const (
	ExampleWater = 57
	ExampleStill = 29
	ExampleSteps = 59

	PocketWater = 2
	PocketStill = 1

	IsolatedVeinWater = 10

	LedgeWater = 12
	LedgeSteps = 17
)

// X builds a vertical vein at column line spanning rows from..to.
func X(line, from, to int) ir.Vein {
	return ir.Vein{Axis: ir.AxisX, Line: line, From: from, To: to}
}

// Y builds a horizontal vein at row line spanning columns from..to.
func Y(line, from, to int) ir.Vein {
	return ir.Vein{Axis: ir.AxisY, Line: line, From: from, To: to}
}

// NewScan builds a scan from veins in the given order.
func NewScan(source string, veins ...ir.Vein) ir.Scan {
	s := ir.Scan{Source: source}
	for _, v := range veins {
		s.Add(v)
	}
	return s
}

// ExampleScan is ExampleScanText as a scan.
func ExampleScan() ir.Scan {
	return NewScan("example",
		X(495, 2, 7),
		Y(7, 495, 501),
		X(501, 3, 7),
		X(498, 2, 4),
		X(506, 1, 2),
		X(498, 10, 13),
		X(504, 10, 13),
		Y(13, 498, 504),
	)
}

// PocketScan is a one-tile pocket directly under the spring, with a far
// vein lifting the top row above the pocket.
func PocketScan() ir.Scan {
	return NewScan("pocket",
		X(499, 2, 3),
		X(501, 2, 3),
		Y(3, 499, 501),
		X(520, 1, 1),
	)
}

// IsolatedVeinScan is a single vertical vein far from the spring column.
// Water falls straight through and drains.
func IsolatedVeinScan() ir.Scan {
	return NewScan("isolated", X(520, 1, 10))
}

// LedgeScan is a floating clay ledge under the spring. Water spreads along
// its top, pours off both ends and drains.
func LedgeScan() ir.Scan {
	return NewScan("ledge",
		Y(5, 498, 502),
		X(510, 1, 1),
	)
}
