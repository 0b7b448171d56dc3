package scan

import (
	"errors"
	"fmt"
)

// ParseError describes malformed scan input.
type ParseError struct {
	Source  string
	Line    int // 1-based; 0 when not tied to a line
	Column  int // 1-based; 0 when unknown
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", src, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", src, e.Line, e.Message)
	default:
		return fmt.Sprintf("%s: %s", src, e.Message)
	}
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
