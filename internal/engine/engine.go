package engine

import (
	"fmt"
	"log/slog"

	"github.com/roach88/seep/internal/ir"
)

// DefaultStepsPerTile scales the default step quota with the region size.
// Correct runs stay well below it; see QuotaEnforcer.
const DefaultStepsPerTile = 64

// StepKind identifies which state machine a step ran.
type StepKind int

const (
	// StepFlow popped the flow frontier.
	StepFlow StepKind = iota + 1
	// StepBacktrack popped the backtrack stack.
	StepBacktrack
)

// String returns the step kind name.
func (k StepKind) String() string {
	switch k {
	case StepFlow:
		return "flow"
	case StepBacktrack:
		return "backtrack"
	default:
		return "unknown"
	}
}

// StepEvent describes one completed step.
type StepEvent struct {
	Seq       int64
	Kind      StepKind
	Point     ir.Point
	Water     int // water tiles after the step
	Frontier  int // frontier length after the step
	Backtrack int // backtrack depth after the step
}

// Observer is called after every step.
// It must not retain or mutate the grid.
type Observer func(StepEvent)

// Stats summarizes a simulation.
type Stats struct {
	Steps   int64 `json:"steps"`
	Water   int   `json:"water"`
	Still   int   `json:"still"`
	Settled bool  `json:"settled"`
	Width   int   `json:"width"`
	Height  int   `json:"height"`
	Clay    int   `json:"clay"`
}

// Engine drives the flow and backtrack state machines over a Grid.
//
// Thread-safety model: none. One Engine owns its grid and queues for its
// whole lifetime and must be used from a single goroutine.
//
// INVARIANTS:
//   - the frontier and backtrack stack are only touched by Step
//   - Pending() == false is the only termination signal
type Engine struct {
	grid      *Grid
	frontier  *frontier
	backtrack *stack
	clock     *Clock
	quota     *QuotaEnforcer
	observer  Observer

	maxSteps int
	source   string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSteps sets the step quota for Run.
//
// Default: DefaultStepsPerTile × the number of tiles in the region.
// Use a small value to test quota enforcement.
func WithMaxSteps(maxSteps int) Option {
	return func(e *Engine) {
		e.maxSteps = maxSteps
	}
}

// WithObserver registers a callback invoked after every step.
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// New builds the grid for scan and seeds the frontier with the spring.
//
// Returns a *BuildError if the scan cannot be turned into a grid. If a clay
// vein covers the spring itself, the spring is sealed and the engine starts
// with no pending work.
func New(scan ir.Scan, opts ...Option) (*Engine, error) {
	g, err := NewGrid(scan)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		grid:      g,
		frontier:  newFrontier(),
		backtrack: newStack(),
		clock:     NewClock(),
		source:    scan.Source,
	}

	spring := g.Spring()
	if g.get(spring.X, spring.Y) == Water {
		e.frontier.Push(spring)
	} else {
		slog.Warn("spring sealed by clay", "source", scan.Source, "spring", spring.String())
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.maxSteps <= 0 {
		e.maxSteps = DefaultStepsPerTile * g.Len()
	}
	e.quota = NewQuotaEnforcer(e.maxSteps)

	return e, nil
}

// Step performs one unit of work and reports whether more work remains.
//
// A flow step runs while the frontier is non-empty; otherwise a backtrack
// step runs. Step on a drained engine is a no-op returning false.
func (e *Engine) Step() bool {
	var (
		p    ir.Point
		kind StepKind
	)

	switch {
	case e.frontier.Len() > 0:
		p, _ = e.flowStep()
		kind = StepFlow
	case e.backtrack.Len() > 0:
		p, _ = e.backtrackStep()
		kind = StepBacktrack
	default:
		return false
	}

	seq := e.clock.Next()
	if e.observer != nil {
		e.observer(StepEvent{
			Seq:       seq,
			Kind:      kind,
			Point:     p,
			Water:     e.grid.water,
			Frontier:  e.frontier.Len(),
			Backtrack: e.backtrack.Len(),
		})
	}

	return e.Pending()
}

// Run steps until no work remains.
//
// Returns *StepsExceededError (wrapped) if the quota is passed; the grid is
// left as it was at that point.
func (e *Engine) Run() (Stats, error) {
	slog.Debug("simulation starting",
		"source", e.source,
		"tiles", e.grid.Len(),
		"max_steps", e.maxSteps,
	)

	for e.Pending() {
		if err := e.quota.Check(); err != nil {
			slog.Error("max steps quota exceeded",
				"source", e.source,
				"steps", e.quota.Current(),
				"limit", e.maxSteps,
				"water", e.grid.water,
			)
			return e.Stats(), fmt.Errorf("run simulation: %w", err)
		}
		e.Step()
	}

	slog.Info("simulation drained",
		"source", e.source,
		"steps", e.clock.Current(),
		"water", e.grid.water,
	)

	return e.Stats(), nil
}

// Pending reports whether either queue still holds work.
func (e *Engine) Pending() bool {
	return e.frontier.Len() > 0 || e.backtrack.Len() > 0
}

// Grid returns the engine's grid.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Clock returns the engine's step clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// MaxSteps returns the configured step quota.
func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

// Stats returns a snapshot of the current counts.
func (e *Engine) Stats() Stats {
	g := e.grid
	return Stats{
		Steps:   e.clock.Current(),
		Water:   g.CountWater(),
		Still:   g.CountStill(),
		Settled: g.Settled(),
		Width:   g.Width(),
		Height:  g.Height(),
		Clay:    g.CountClay(),
	}
}
