package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/scan"
)

// ValidationResult describes a scan that parsed and built cleanly.
type ValidationResult struct {
	Valid      bool          `json:"valid"`
	Source     string        `json:"source"`
	Format     string        `json:"format"`
	Veins      int           `json:"veins"`
	Vertical   int           `json:"vertical"`
	Horizontal int           `json:"horizontal"`
	Bounds     engine.Bounds `json:"bounds"`
	Tiles      int           `json:"tiles"`
	ScanHash   string        `json:"scan_hash"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scan>",
		Short: "Check a scan without simulating it",
		Long: `Parse a scan and build its grid without running water through it.

Reports the vein count, the padded region and the content hash used to
group runs in the journal. Malformed scans, inverted ranges and empty
scans exit with code 2.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	format := scan.DetectFormat(path)
	formatter.VerboseLog("Reading %s as %s", path, format)

	s, err := scan.Load(path)
	if err != nil {
		return outputError(formatter, err)
	}
	g, err := engine.NewGrid(s)
	if err != nil {
		return outputError(formatter, err)
	}
	hash, err := ir.ScanHash(s)
	if err != nil {
		return outputError(formatter, err)
	}

	result := ValidationResult{
		Valid:      true,
		Source:     s.Source,
		Format:     string(format),
		Veins:      s.Len(),
		Vertical:   len(s.X),
		Horizontal: len(s.Y),
		Bounds:     g.Bounds(),
		Tiles:      g.Len(),
		ScanHash:   hash,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	b := result.Bounds
	fmt.Fprintf(w, "✓ %s is valid\n", result.Source)
	fmt.Fprintf(w, "  Veins:  %d (%d vertical, %d horizontal)\n", result.Veins, result.Vertical, result.Horizontal)
	fmt.Fprintf(w, "  Region: x %d..%d, y %d..%d (%d tiles)\n", b.MinX, b.MaxX, b.MinY, b.MaxY, result.Tiles)
	fmt.Fprintf(w, "  Hash:   %s\n", result.ScanHash)
	return nil
}
