package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/render"
	"github.com/roach88/seep/internal/report"
	"github.com/roach88/seep/internal/scan"
	"github.com/roach88/seep/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Render   bool
	ShowFlow bool
	NoSettle bool
	Database string
	Profile  string
	Trace    bool
	Delay    time.Duration
	MaxSteps int

	// RunIDs allows overriding the journal's run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs store.RunIDGenerator
}

// RunResult is the JSON payload of the run command.
type RunResult struct {
	Source    string        `json:"source"`
	ScanHash  string        `json:"scan_hash"`
	Water     int           `json:"water"`
	Still     *int          `json:"still,omitempty"` // nil with --no-settle
	Steps     int64         `json:"steps"`
	Clay      int           `json:"clay"`
	Bounds    engine.Bounds `json:"bounds"`
	RunID     string        `json:"run_id,omitempty"`
	Seq       int64         `json:"seq,omitempty"`
	Rendering string        `json:"rendering,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scan>",
		Short: "Simulate water seeping through a scan",
		Long: `Load a clay scan, let water run from the spring at x=500 until it
stops moving, and report how many tiles water reached.

The scan format is chosen by extension: .yaml/.yml and .cue are structured
scans, anything else is the line format "x=495, y=2..7".

Exit codes:
  0 - Simulation finished
  1 - Step quota exceeded
  2 - Command error (unreadable or malformed scan, empty scan, bad database)

Examples:
  seep run scan.txt
  seep run scan.txt --render --show-flow
  seep run scan.yaml --db ./seep.db --profile rows.csv
  seep run scan.txt --trace --delay 20ms`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Render, "render", false, "print the final grid")
	cmd.Flags().BoolVar(&opts.ShowFlow, "show-flow", false, "draw flowing water as | (implies --render)")
	cmd.Flags().BoolVar(&opts.NoSettle, "no-settle", false, "skip stabilization and the still-water count")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite journal")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "write a per-row CSV profile to this path")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "log every step at debug level")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pause between steps")
	cmd.Flags().IntVar(&opts.MaxSteps, "max-steps", 0, "step quota (0 = scaled to region size)")

	return cmd
}

func runSimulation(opts *RunOptions, path string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose || opts.Trace, cmd.ErrOrStderr())

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	slog.Info("loading scan", "path", path)
	s, err := scan.Load(path)
	if err != nil {
		return outputError(formatter, err)
	}
	hash, err := ir.ScanHash(s)
	if err != nil {
		return outputError(formatter, err)
	}
	slog.Debug("scan loaded", "veins", s.Len(), "scan_hash", hash)

	engOpts := []engine.Option{engine.WithObserver(stepObserver(opts))}
	if opts.MaxSteps > 0 {
		engOpts = append(engOpts, engine.WithMaxSteps(opts.MaxSteps))
	}
	eng, err := engine.New(s, engOpts...)
	if err != nil {
		return outputError(formatter, err)
	}

	stats, err := eng.Run()
	if err != nil {
		return outputError(formatter, err)
	}
	if !opts.NoSettle {
		if _, err := eng.Settle(); err != nil {
			return outputError(formatter, err)
		}
		stats = eng.Stats()
	}

	grid := eng.Grid()
	result := RunResult{
		Source:   s.Source,
		ScanHash: hash,
		Water:    stats.Water,
		Steps:    stats.Steps,
		Clay:     stats.Clay,
		Bounds:   grid.Bounds(),
	}
	if stats.Settled {
		still := stats.Still
		result.Still = &still
	}

	if opts.Profile != "" {
		if err := report.WriteFile(opts.Profile, grid); err != nil {
			_ = formatter.Error(ErrCodeWrite, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to write profile", err)
		}
		slog.Info("profile written", "path", opts.Profile, "rows", grid.Height())
	}

	if opts.Database != "" {
		if err := journalRun(cmd, opts, s, eng, &result); err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record run", err)
		}
	}

	renderOpts := render.Options{ShowFlow: opts.ShowFlow}
	if formatter.Format == "json" {
		if opts.Render || opts.ShowFlow {
			result.Rendering = render.String(grid, renderOpts)
		}
		return formatter.Success(result)
	}

	w := formatter.Writer
	if opts.Render || opts.ShowFlow {
		if err := render.Render(w, grid, renderOpts); err != nil {
			return WrapExitError(ExitFailure, "failed to render grid", err)
		}
	}
	fmt.Fprintf(w, "All water tiles count: %d\n", result.Water)
	if result.Still != nil {
		fmt.Fprintf(w, "Still water tiles count: %d\n", *result.Still)
	}
	if result.RunID != "" {
		fmt.Fprintf(w, "Recorded run %s (seq %d)\n", result.RunID, result.Seq)
	}
	return nil
}

// stepObserver returns the per-step hook for --trace and --delay, or nil
// when neither is set.
func stepObserver(opts *RunOptions) engine.Observer {
	if !opts.Trace && opts.Delay <= 0 {
		return nil
	}
	return func(ev engine.StepEvent) {
		if opts.Trace {
			slog.Debug("step",
				"seq", ev.Seq,
				"kind", ev.Kind.String(),
				"point", ev.Point.String(),
				"water", ev.Water,
				"frontier", ev.Frontier,
				"backtrack", ev.Backtrack,
			)
		}
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}
}

// journalRun appends the finished run to the journal at opts.Database and
// fills in result's run ID and sequence number.
func journalRun(cmd *cobra.Command, opts *RunOptions, s ir.Scan, eng *engine.Engine, result *RunResult) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = store.UUIDv7Generator{}
	}

	rec, err := store.NewRunRecord(runIDs.Generate(), s, eng.Stats(), eng.Grid().Bounds())
	if err != nil {
		return err
	}
	seq, err := st.WriteRun(ctx, rec)
	if err != nil {
		return err
	}

	result.RunID = rec.ID
	result.Seq = seq
	slog.Info("run recorded", "id", rec.ID, "seq", seq)
	return nil
}
