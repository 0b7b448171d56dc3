package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/scan"
)

// Scenario is one simulation with its expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Scan is an inline scan in the text format.
	Scan string `yaml:"scan,omitempty"`

	// ScanFile is a scan file in any supported format, relative to the
	// scenario file. Exactly one of Scan and ScanFile is set.
	ScanFile string `yaml:"scan_file,omitempty"`

	// MaxSteps overrides the engine step quota when positive.
	MaxSteps int `yaml:"max_steps,omitempty"`

	// NoSettle skips the stabilization pass.
	NoSettle bool `yaml:"no_settle,omitempty"`

	// RunID is the journal ID. If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Expect holds the expected counts or failure.
	Expect Expect `yaml:"expect"`

	// Assertions check individual tiles and rows of the final grid.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// dir is the directory ScanFile is resolved against.
	dir string
}

// Expect is the expected outcome of a scenario.
// Nil counts are not checked.
type Expect struct {
	Water *int   `yaml:"water,omitempty"`
	Still *int   `yaml:"still,omitempty"`
	Steps *int64 `yaml:"steps,omitempty"`

	// Error names the failure class the scenario must end in.
	Error string `yaml:"error,omitempty"`
}

// Failure classes for Expect.Error.
const (
	ErrorParse = "parse"
	ErrorBuild = "build"
	ErrorQuota = "quota"
)

// Assertion checks one tile or one row of the final grid.
type Assertion struct {
	// Type is "tile" or "row".
	Type string `yaml:"type"`

	X int `yaml:"x,omitempty"`
	Y int `yaml:"y"`

	// Tile is the expected state for tile assertions:
	// sand, clay, water, still or flowing.
	Tile string `yaml:"tile,omitempty"`

	// Expected per-row counts for row assertions.
	Clay  *int `yaml:"clay,omitempty"`
	Water *int `yaml:"water,omitempty"`
	Still *int `yaml:"still,omitempty"`
}

// Assertion type constants.
const (
	AssertTile = "tile"
	AssertRow  = "row"
)

// Tile states accepted by tile assertions.
const (
	TileSand    = "sand"
	TileClay    = "clay"
	TileWater   = "water"
	TileStill   = "still"
	TileFlowing = "flowing"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	scenario.dir = filepath.Dir(path)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios loads a single scenario file, or every .yaml/.yml file
// directly inside a directory, in file name order.
func LoadScenarios(path string) ([]*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scenarios: %w", err)
	}
	if !info.IsDir() {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		return []*Scenario{s}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := LoadScenario(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", path)
	}
	return scenarios, nil
}

// LoadScan returns the scenario's scan, parsing it inline or from ScanFile.
func (s *Scenario) LoadScan() (ir.Scan, error) {
	if s.ScanFile != "" {
		path := s.ScanFile
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		return scan.Load(path)
	}
	return scan.ParseText([]byte(s.Scan), s.Name)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Scan == "" && s.ScanFile == "":
		return fmt.Errorf("one of scan or scan_file is required")
	case s.Scan != "" && s.ScanFile != "":
		return fmt.Errorf("scan and scan_file are mutually exclusive")
	}

	if s.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative")
	}

	e := s.Expect
	switch e.Error {
	case "", ErrorParse, ErrorBuild, ErrorQuota:
	default:
		return fmt.Errorf("expect.error: unknown failure class %q", e.Error)
	}
	if e.Water == nil && e.Still == nil && e.Steps == nil && e.Error == "" {
		return fmt.Errorf("expect needs at least one of water, still, steps or error")
	}
	if s.NoSettle && e.Still != nil {
		return fmt.Errorf("expect.still cannot be checked with no_settle")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTile:
		switch a.Tile {
		case TileSand, TileClay, TileWater, TileStill, TileFlowing:
		case "":
			return fmt.Errorf("assertions[%d]: tile is required for tile", index)
		default:
			return fmt.Errorf("assertions[%d]: unknown tile state %q", index, a.Tile)
		}
	case AssertRow:
		if a.Clay == nil && a.Water == nil && a.Still == nil {
			return fmt.Errorf("assertions[%d]: row needs at least one of clay, water or still", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
