package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/seep/internal/ir"
)

type yamlScan struct {
	Veins []yamlVein `yaml:"veins"`
}

type yamlVein struct {
	X span `yaml:"x"`
	Y span `yaml:"y"`
}

// UnmarshalYAML accepts an int, a two-element int list or an "A..B" string.
func (s *span) UnmarshalYAML(n *yaml.Node) error {
	s.set = true
	s.line, s.column = n.Line, n.Column

	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!int" {
			var v int
			if err := n.Decode(&v); err != nil {
				return s.errorf("invalid coordinate %q", n.Value)
			}
			s.from, s.to = v, v
			return nil
		}
		from, to, err := parseRange(n.Value)
		if err != nil {
			return s.errorf("%v", err)
		}
		s.from, s.to, s.isRange = from, to, true
		return nil

	case yaml.SequenceNode:
		var vs []int
		if err := n.Decode(&vs); err != nil || len(vs) != 2 {
			return s.errorf("range must be a list of two integers")
		}
		s.from, s.to, s.isRange = vs[0], vs[1], true
		return nil

	default:
		return s.errorf("expected coordinate or range")
	}
}

func (s *span) errorf(format string, args ...any) error {
	return &ParseError{Line: s.line, Column: s.column, Message: fmt.Sprintf(format, args...)}
}

// ParseYAML parses a YAML scan document.
// Unknown fields are rejected so typos surface as errors.
func ParseYAML(data []byte, source string) (ir.Scan, error) {
	var doc yamlScan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Scan{}, &ParseError{Source: source, Message: "empty document"}
		}
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Source = source
			return ir.Scan{}, pe
		}
		return ir.Scan{}, &ParseError{Source: source, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	if len(doc.Veins) == 0 {
		return ir.Scan{}, &ParseError{Source: source, Message: "no veins found"}
	}

	scan := ir.Scan{Source: source}
	for i, raw := range doc.Veins {
		v, err := toVein(raw.X, raw.Y)
		if err != nil {
			line, col := raw.X.line, raw.X.column
			if line == 0 {
				line, col = raw.Y.line, raw.Y.column
			}
			return ir.Scan{}, &ParseError{
				Source:  source,
				Line:    line,
				Column:  col,
				Message: fmt.Sprintf("veins[%d]: %v", i, err),
			}
		}
		scan.Add(v)
	}

	return scan, nil
}
