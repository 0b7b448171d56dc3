package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/render"
	"github.com/roach88/seep/internal/scan"
	"github.com/roach88/seep/internal/store"
	"github.com/roach88/seep/internal/testutil"
)

// Harness is the scenario execution engine.
// It runs scenarios with a fixed run ID against a private journal.
type Harness struct {
	store  *store.Store
	runIDs store.RunIDGenerator
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh in-memory journal for isolation.
// Failures the scenario expects (Expect.Error) are reported in
// Result.Failure and do not fail the result; any other parse, build or
// quota failure fails the result. The returned error is reserved for
// problems outside the simulation, such as an unreadable scan file.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		runIDs: testutil.NewFixedRunIDGenerator(scenario.RunID),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return h.run(context.Background(), scenario)
}

func (h *Harness) run(ctx context.Context, scenario *Scenario) (*Result, error) {
	result := NewResult()

	s, err := scenario.LoadScan()
	if err != nil {
		if scan.IsParseError(err) {
			return h.failed(scenario, result, ErrorParse, err), nil
		}
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	opts := []engine.Option{engine.WithObserver(result.observe)}
	if scenario.MaxSteps > 0 {
		opts = append(opts, engine.WithMaxSteps(scenario.MaxSteps))
	}

	e, err := engine.New(s, opts...)
	if err != nil {
		if engine.IsBuildError(err) {
			return h.failed(scenario, result, ErrorBuild, err), nil
		}
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	if _, err := e.Run(); err != nil {
		result.Stats = e.Stats()
		result.Rendering = render.String(e.Grid(), render.Options{ShowFlow: true})
		if engine.IsQuotaError(err) {
			return h.failed(scenario, result, ErrorQuota, err), nil
		}
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	if !scenario.NoSettle {
		if _, err := e.Settle(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	result.Stats = e.Stats()
	result.Rendering = render.String(e.Grid(), render.Options{ShowFlow: true})

	h.checkExpect(scenario.Expect, result)
	for _, msg := range EvaluateAssertions(e.Grid(), scenario.Assertions) {
		result.AddError(msg)
	}

	if err := h.journal(ctx, s, e, result); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"water", result.Stats.Water,
		"still", result.Stats.Still,
	)

	return result, nil
}

// failed records a simulation failure of the given class.
func (h *Harness) failed(scenario *Scenario, result *Result, class string, err error) *Result {
	result.Failure = err.Error()
	if scenario.Expect.Error != class {
		result.AddError(fmt.Sprintf("unexpected %s failure: %v", class, err))
	}
	h.logger.Info("scenario failed",
		"scenario", scenario.Name,
		"class", class,
		"expected", scenario.Expect.Error == class,
	)
	return result
}

func (h *Harness) checkExpect(expect Expect, result *Result) {
	if expect.Error != "" {
		result.AddError(fmt.Sprintf("expected %s failure, simulation succeeded", expect.Error))
	}
	if expect.Water != nil && *expect.Water != result.Stats.Water {
		result.AddError(fmt.Sprintf("water: expected %d, got %d", *expect.Water, result.Stats.Water))
	}
	if expect.Still != nil && *expect.Still != result.Stats.Still {
		result.AddError(fmt.Sprintf("still: expected %d, got %d", *expect.Still, result.Stats.Still))
	}
	if expect.Steps != nil && *expect.Steps != result.Stats.Steps {
		result.AddError(fmt.Sprintf("steps: expected %d, got %d", *expect.Steps, result.Stats.Steps))
	}
}

// journal writes the run to the harness store and reads it back.
func (h *Harness) journal(ctx context.Context, s ir.Scan, e *engine.Engine, result *Result) error {
	rec, err := store.NewRunRecord(h.runIDs.Generate(), s, e.Stats(), e.Grid().Bounds())
	if err != nil {
		return err
	}
	if _, err := h.store.WriteRun(ctx, rec); err != nil {
		return err
	}
	result.Record, err = h.store.ReadRun(ctx, rec.ID)
	return err
}
