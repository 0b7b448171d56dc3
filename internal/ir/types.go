package ir

import "fmt"

// SpringX is the column the spring always sits in.
const SpringX = 500

// Axis names the fixed coordinate of a vein.
type Axis string

const (
	// AxisX is a vertical vein: x is fixed, the range spans rows.
	AxisX Axis = "x"
	// AxisY is a horizontal vein: y is fixed, the range spans columns.
	AxisY Axis = "y"
)

// Other returns the axis the vein's range runs along.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Valid reports whether a is one of the two known axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY
}

// Vein is an axis-aligned clay segment.
// Line is the fixed coordinate on Axis; From..To is inclusive on the other axis.
type Vein struct {
	Axis Axis `json:"axis" yaml:"axis"`
	Line int  `json:"line" yaml:"line"`
	From int  `json:"from" yaml:"from"`
	To   int  `json:"to" yaml:"to"`
}

// String renders the vein in the text scan format.
func (v Vein) String() string {
	return fmt.Sprintf("%s=%d, %s=%d..%d", v.Axis, v.Line, v.Axis.Other(), v.From, v.To)
}

// Points returns every coordinate covered by the vein, in range order.
func (v Vein) Points() []Point {
	if v.To < v.From {
		return nil
	}
	pts := make([]Point, 0, v.To-v.From+1)
	for i := v.From; i <= v.To; i++ {
		if v.Axis == AxisX {
			pts = append(pts, Point{X: v.Line, Y: i})
		} else {
			pts = append(pts, Point{X: i, Y: v.Line})
		}
	}
	return pts
}

// Scan is a parsed ground cross-section.
// Vertical veins (x fixed) are kept apart from horizontal veins (y fixed).
type Scan struct {
	Source string `json:"source,omitempty"`
	X      []Vein `json:"x"`
	Y      []Vein `json:"y"`
}

// Add appends v to the slice matching its axis.
func (s *Scan) Add(v Vein) {
	if v.Axis == AxisX {
		s.X = append(s.X, v)
		return
	}
	s.Y = append(s.Y, v)
}

// Len returns the total number of veins.
func (s Scan) Len() int {
	return len(s.X) + len(s.Y)
}

// Veins returns all veins, vertical first, each group in insertion order.
func (s Scan) Veins() []Vein {
	out := make([]Vein, 0, s.Len())
	out = append(out, s.X...)
	out = append(out, s.Y...)
	return out
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
