package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/seep/internal/ir"
)

// Sentinel errors for grid construction and settlement.
var (
	// ErrEmptyScan means the scan has no veins, so the region is undefined.
	ErrEmptyScan = errors.New("scan has no clay veins")

	// ErrInvertedRange means a vein's From is greater than its To.
	ErrInvertedRange = errors.New("vein range is inverted")

	// ErrInvalidAxis means a vein sits in the wrong axis group.
	ErrInvalidAxis = errors.New("vein axis does not match its group")

	// ErrRegionTooLarge means the veins span more than MaxTiles tiles.
	ErrRegionTooLarge = errors.New("scan region is too large")

	// ErrNotSettled means Settle was called while work was still pending.
	ErrNotSettled = errors.New("simulation still has pending work")
)

// BuildError is returned when a scan cannot be turned into a grid.
type BuildError struct {
	// Source is the scan's source name, if any.
	Source string

	// Vein is the offending vein; zero for scan-level errors.
	Vein ir.Vein

	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Vein != (ir.Vein{}) {
		if e.Source != "" {
			return fmt.Sprintf("build grid from %s: %s: %v", e.Source, e.Vein, e.Err)
		}
		return fmt.Sprintf("build grid: %s: %v", e.Vein, e.Err)
	}
	if e.Source != "" {
		return fmt.Sprintf("build grid from %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("build grid: %v", e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// RegionError describes an access outside the grid region.
//
// It is a programming defect, not a runtime condition: Grid.At and Grid.Set
// panic with a *RegionError rather than returning it.
type RegionError struct {
	Op   string
	X, Y int

	MinX, MaxX int
	MinY, MaxY int
}

// Error implements the error interface.
func (e *RegionError) Error() string {
	return fmt.Sprintf("%s (%d,%d) outside region x=%d..%d y=%d..%d",
		e.Op, e.X, e.Y, e.MinX, e.MaxX, e.MinY, e.MaxY)
}

// IsBuildError returns true if err is or wraps a *BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}
