package scan

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/seep/internal/ir"
)

// ParseCUE parses a CUE scan document of the form
//
//	veins: [
//		{x: 495, y: [2, 7]},
//		{y: 7, x: "495..501"},
//	]
//
// Each coordinate is an int; each range is a two-element int list or an
// "A..B" string. Fields other than x and y are rejected.
func ParseCUE(data []byte, source string) (ir.Scan, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(source))
	if err := v.Err(); err != nil {
		return ir.Scan{}, cueError(source, err)
	}

	veinsVal := v.LookupPath(cue.ParsePath("veins"))
	if !veinsVal.Exists() {
		return ir.Scan{}, &ParseError{Source: source, Message: "veins is required"}
	}
	iter, err := veinsVal.List()
	if err != nil {
		return ir.Scan{}, cueError(source, err)
	}

	scan := ir.Scan{Source: source}
	for i := 0; iter.Next(); i++ {
		entry := iter.Value()
		x, y, err := cueVein(source, entry)
		if err != nil {
			return ir.Scan{}, err
		}
		vein, err := toVein(x, y)
		if err != nil {
			return ir.Scan{}, posError(source, entry.Pos(), fmt.Sprintf("veins[%d]: %v", i, err))
		}
		scan.Add(vein)
	}

	if scan.Len() == 0 {
		return ir.Scan{}, &ParseError{Source: source, Message: "no veins found"}
	}
	return scan, nil
}

func cueVein(source string, v cue.Value) (span, span, error) {
	var x, y span

	fields, err := v.Fields()
	if err != nil {
		return x, y, cueError(source, err)
	}
	for fields.Next() {
		label := fields.Selector().String()
		fv := fields.Value()

		var target *span
		switch label {
		case "x":
			target = &x
		case "y":
			target = &y
		default:
			return x, y, posError(source, fv.Pos(), fmt.Sprintf("unknown field %q", label))
		}
		s, err := cueSpan(source, fv)
		if err != nil {
			return x, y, err
		}
		*target = s
	}
	return x, y, nil
}

func cueSpan(source string, v cue.Value) (span, error) {
	s := span{set: true}
	if pos := v.Pos(); pos.IsValid() {
		s.line, s.column = pos.Line(), pos.Column()
	}

	switch v.IncompleteKind() {
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return s, cueError(source, err)
		}
		s.from, s.to = int(n), int(n)
		return s, nil

	case cue.StringKind:
		str, err := v.String()
		if err != nil {
			return s, cueError(source, err)
		}
		from, to, err := parseRange(str)
		if err != nil {
			return s, posError(source, v.Pos(), err.Error())
		}
		s.from, s.to, s.isRange = from, to, true
		return s, nil

	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return s, cueError(source, err)
		}
		var bounds []int
		for iter.Next() {
			n, err := iter.Value().Int64()
			if err != nil {
				return s, posError(source, v.Pos(), "range must be a list of two integers")
			}
			bounds = append(bounds, int(n))
		}
		if len(bounds) != 2 {
			return s, posError(source, v.Pos(), "range must be a list of two integers")
		}
		s.from, s.to, s.isRange = bounds[0], bounds[1], true
		return s, nil

	default:
		return s, posError(source, v.Pos(), "expected coordinate or range")
	}
}

func posError(source string, pos token.Pos, msg string) *ParseError {
	pe := &ParseError{Source: source, Message: msg}
	if pos.IsValid() {
		pe.Line, pe.Column = pos.Line(), pos.Column()
	}
	return pe
}

// cueError converts the first CUE error into a *ParseError, keeping its
// position when CUE reports one.
func cueError(source string, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ParseError{Source: source, Message: err.Error()}
	}
	first := errs[0]
	var pos token.Pos
	if positions := errors.Positions(first); len(positions) > 0 {
		pos = positions[0]
	}
	return posError(source, pos, first.Error())
}
