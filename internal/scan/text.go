package scan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/seep/internal/ir"
)

// ParseText parses the native text format.
//
// Each line is "x=N, y=A..B" or "y=N, x=A..B". Trailing empty lines are
// accepted; any other content the grammar cannot consume is an error, and
// so is input with no veins at all.
func ParseText(data []byte, source string) (ir.Scan, error) {
	scan := ir.Scan{Source: source}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ir.Scan{}, &ParseError{Source: source, Message: "no veins found"}
	}

	for i, line := range lines {
		p := &lineParser{src: line}
		v, err := p.vein()
		if err != nil {
			return ir.Scan{}, &ParseError{
				Source:  source,
				Line:    i + 1,
				Column:  p.pos + 1,
				Message: err.Error(),
			}
		}
		scan.Add(v)
	}

	return scan, nil
}

// FormatScan renders a scan in the text format, vertical veins first.
func FormatScan(s ir.Scan) string {
	var b strings.Builder
	for _, v := range s.Veins() {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// lineParser is a cursor over one line of text input.
type lineParser struct {
	src string
	pos int
}

func (p *lineParser) vein() (ir.Vein, error) {
	axis, err := p.axis()
	if err != nil {
		return ir.Vein{}, err
	}
	if err := p.expect("="); err != nil {
		return ir.Vein{}, err
	}
	line, err := p.number()
	if err != nil {
		return ir.Vein{}, err
	}
	if err := p.expect(", " + string(axis.Other()) + "="); err != nil {
		return ir.Vein{}, err
	}
	from, err := p.number()
	if err != nil {
		return ir.Vein{}, err
	}
	if err := p.expect(".."); err != nil {
		return ir.Vein{}, err
	}
	to, err := p.number()
	if err != nil {
		return ir.Vein{}, err
	}
	if p.pos < len(p.src) {
		return ir.Vein{}, fmt.Errorf("unexpected trailing input %q", p.src[p.pos:])
	}
	return ir.Vein{Axis: axis, Line: line, From: from, To: to}, nil
}

func (p *lineParser) axis() (ir.Axis, error) {
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("expected axis, got end of line")
	}
	switch a := ir.Axis(p.src[p.pos : p.pos+1]); a {
	case ir.AxisX, ir.AxisY:
		p.pos++
		return a, nil
	default:
		return "", fmt.Errorf("expected axis x or y, got %q", p.src[p.pos:p.pos+1])
	}
}

func (p *lineParser) expect(lit string) error {
	if !strings.HasPrefix(p.src[p.pos:], lit) {
		return fmt.Errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func (p *lineParser) number() (int, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return n, nil
}
