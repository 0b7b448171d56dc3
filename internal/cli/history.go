package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	ScanHash string
	Limit    int
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Runs  []ir.RunRecord `json:"runs"`
	Count int            `json:"count"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded with "seep run --db", oldest first.

Example:
  seep history --db ./seep.db
  seep history --db ./seep.db --scan <hash> --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.ScanHash, "scan", "", "only runs of the scan with this hash")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "only the most recent N runs (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Opening creates the file; a journal that was never written is an error.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("database not found: %s", opts.Database), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runs, err := st.ListRuns(ctx, store.RunFilter{ScanHash: opts.ScanHash, Limit: opts.Limit})
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(HistoryResult{Runs: runs, Count: len(runs)})
	}

	w := formatter.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN\tSOURCE\tWATER\tSTILL\tSTEPS\tSCAN")
	for _, r := range runs {
		still := "-"
		if r.Settled {
			still = fmt.Sprint(r.Still)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%d\t%s\n",
			r.Seq, r.ID, r.Source, r.Water, still, r.Steps, shortHash(r.ScanHash))
	}
	if err := tw.Flush(); err != nil {
		return WrapExitError(ExitFailure, "failed to write history", err)
	}
	fmt.Fprintf(w, "\n%d run(s)\n", len(runs))
	return nil
}

// shortHash truncates a scan hash for table display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
