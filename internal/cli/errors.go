package cli

import (
	"errors"
	"io/fs"

	"github.com/roach88/seep/internal/engine"
	"github.com/roach88/seep/internal/scan"
)

// classify maps a load or simulation error to its error code and exit code.
func classify(err error) (string, int) {
	var pathErr *fs.PathError
	switch {
	case scan.IsParseError(err):
		return ErrCodeParse, ExitCommandError
	case engine.IsBuildError(err):
		return ErrCodeBuild, ExitCommandError
	case engine.IsQuotaError(err):
		return ErrCodeQuota, ExitFailure
	case errors.As(err, &pathErr):
		return ErrCodeRead, ExitCommandError
	default:
		return ErrCodeInternal, ExitFailure
	}
}

// outputError reports err through the formatter and returns the matching
// ExitError.
func outputError(formatter *OutputFormatter, err error) error {
	code, exitCode := classify(err)
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(exitCode, code, err)
}
