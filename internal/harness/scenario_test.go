package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seep/internal/testutil"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/example_basin.yaml")
	require.NoError(t, err)

	assert.Equal(t, "example_basin", scenario.Name)
	assert.Equal(t, "example-basin-run", scenario.RunID)
	assert.Equal(t, testutil.ExampleScanText, scenario.Scan)
	require.NotNil(t, scenario.Expect.Water)
	assert.Equal(t, 57, *scenario.Expect.Water)
	require.NotNil(t, scenario.Expect.Steps)
	assert.Equal(t, int64(59), *scenario.Expect.Steps)
	assert.Len(t, scenario.Assertions, 6)
	assert.Equal(t, AssertTile, scenario.Assertions[0].Type)
	assert.Equal(t, TileStill, scenario.Assertions[0].Tile)
}

func TestLoadScenario_ScanFileIsRelative(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/pocket.yaml")
	require.NoError(t, err)

	s, err := scenario.LoadScan()
	require.NoError(t, err)
	assert.Equal(t, testutil.PocketScan().Veins(), s.Veins())
}

func TestLoadScenario_InlineScanSource(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/ledge.yaml")
	require.NoError(t, err)

	s, err := scenario.LoadScan()
	require.NoError(t, err)
	assert.Equal(t, "ledge", s.Source)
	assert.Equal(t, testutil.LedgeScan().Veins(), s.Veins())
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "typo.yaml", `
name: typo
description: "misspelled field"
scan: "x=1, y=1..2"
expects:
  water: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "missing name",
			content:  "description: d\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\n",
			contains: "name is required",
		},
		{
			name:     "missing description",
			content:  "name: n\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\n",
			contains: "description is required",
		},
		{
			name:     "no scan",
			content:  "name: n\ndescription: d\nexpect: {water: 1}\n",
			contains: "one of scan or scan_file is required",
		},
		{
			name:     "both scans",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nscan_file: a.txt\nexpect: {water: 1}\n",
			contains: "mutually exclusive",
		},
		{
			name:     "empty expect",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\n",
			contains: "expect needs at least one",
		},
		{
			name:     "unknown failure class",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nexpect: {error: boom}\n",
			contains: `unknown failure class "boom"`,
		},
		{
			name:     "still without settle",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nno_settle: true\nexpect: {still: 0}\n",
			contains: "cannot be checked with no_settle",
		},
		{
			name:     "negative quota",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nmax_steps: -1\nexpect: {water: 1}\n",
			contains: "max_steps must be non-negative",
		},
		{
			name:     "unknown assertion",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\nassertions: [{type: column, y: 1}]\n",
			contains: `assertions[0]: unknown assertion type "column"`,
		},
		{
			name:     "tile without state",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\nassertions: [{type: tile, x: 1, y: 1}]\n",
			contains: "tile is required",
		},
		{
			name:     "bad tile state",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\nassertions: [{type: tile, x: 1, y: 1, tile: mud}]\n",
			contains: `unknown tile state "mud"`,
		},
		{
			name:     "row without counts",
			content:  "name: n\ndescription: d\nscan: \"x=1, y=1..2\"\nexpect: {water: 1}\nassertions: [{type: row, y: 1}]\n",
			contains: "row needs at least one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), "s.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadScenarios_Dir(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	var names []string
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"bad_scan",
		"example_basin",
		"inverted_vein",
		"isolated_vein",
		"ledge",
		"pocket",
		"sealed_spring",
		"step_quota",
		"unsettled",
	}, names)
}

func TestLoadScenarios_SingleFile(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios/ledge.yaml")
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "ledge", scenarios[0].Name)
}

func TestLoadScenarios_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "notes.txt", "not a scenario")

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}

func TestLoadScenarios_MissingPath(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
