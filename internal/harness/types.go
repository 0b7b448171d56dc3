package harness

import (
	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	Pass bool `json:"pass"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Stats are the final simulation counts.
	Stats engine.Stats `json:"stats"`

	// FlowSteps and BacktrackSteps split Stats.Steps by state machine.
	FlowSteps      int64 `json:"flow_steps"`
	BacktrackSteps int64 `json:"backtrack_steps"`

	// Failure is the error the scenario ended in, if any.
	Failure string `json:"failure,omitempty"`

	// Record is the journal entry written for the run.
	Record ir.RunRecord `json:"record"`

	// Rendering is the final grid drawn with flowing water shown.
	Rendering string `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// observe tallies steps by kind.
func (r *Result) observe(ev engine.StepEvent) {
	switch ev.Kind {
	case engine.StepFlow:
		r.FlowSteps++
	case engine.StepBacktrack:
		r.BacktrackSteps++
	}
}
