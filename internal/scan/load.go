package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/seep/internal/ir"
)

// Format names a scan encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// DetectFormat picks a format from the file extension.
// Anything that is not .yaml, .yml or .cue is read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".cue":
		return FormatCUE
	default:
		return FormatText
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, source string, format Format) (ir.Scan, error) {
	switch format {
	case FormatText, "":
		return ParseText(data, source)
	case FormatYAML:
		return ParseYAML(data, source)
	case FormatCUE:
		return ParseCUE(data, source)
	default:
		return ir.Scan{}, fmt.Errorf("unknown scan format %q", format)
	}
}

// Load reads and parses a scan file, choosing the format by extension.
func Load(path string) (ir.Scan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Scan{}, fmt.Errorf("read scan: %w", err)
	}
	return Parse(data, path, DetectFormat(path))
}
