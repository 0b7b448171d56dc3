package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxScenario = `name: box
description: "A closed box under the spring holds three still tiles"
scan: |
  x=498, y=3..5
  x=502, y=3..5
  y=5, x=498..502
expect:
  water: 4
  still: 3
assertions:
  - type: tile
    x: 500
    y: 3
    tile: flowing
`

const wrongBoxScenario = `name: wrong_box
description: "Same box with a wrong water count"
scan: |
  x=498, y=3..5
  x=502, y=3..5
  y=5, x=498..502
expect:
  water: 5
`

const quotaScenario = `name: quota
description: "A tiny step quota fails the run"
scan: |
  x=498, y=3..5
  x=502, y=3..5
  y=5, x=498..502
max_steps: 1
expect:
  error: quota
`

// scenarioDir writes the given scenario files into a temp dir.
func scenarioDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestTestCommand_AllPass(t *testing.T) {
	dir := scenarioDir(t, map[string]string{
		"box.yaml":   boxScenario,
		"quota.yaml": quotaScenario,
	})

	out, _, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ box\n")
	assert.Contains(t, out, "✓ quota\n")
	assert.Contains(t, out, "Test Summary: 2 passed, 0 failed, 2 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommand_Failure(t *testing.T) {
	dir := scenarioDir(t, map[string]string{
		"box.yaml":       boxScenario,
		"wrong_box.yaml": wrongBoxScenario,
	})

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_box\n")
	assert.Contains(t, out, "  water: expected 5, got 4\n")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommand_JSON(t *testing.T) {
	dir := scenarioDir(t, map[string]string{
		"box.yaml":       boxScenario,
		"wrong_box.yaml": wrongBoxScenario,
	})

	out, _, err := execute(t, "--format", "json", "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 2)

	box := resp.Data.Scenarios[0]
	assert.Equal(t, "box", box.Name)
	assert.True(t, box.Pass)
	assert.Equal(t, 4, box.Water)
	assert.Equal(t, 3, box.Still)
}

func TestTestCommand_SingleFileAndFilter(t *testing.T) {
	dir := scenarioDir(t, map[string]string{
		"box.yaml":       boxScenario,
		"wrong_box.yaml": wrongBoxScenario,
	})

	out, _, err := execute(t, "test", filepath.Join(dir, "box.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")

	out, _, err = execute(t, "test", dir, "--filter", "box*")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")

	out, _, err = execute(t, "test", dir, "--filter", "nothing*")
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommand_Golden(t *testing.T) {
	dir := scenarioDir(t, map[string]string{"box.yaml": boxScenario})
	golden := filepath.Join(t.TempDir(), "golden")

	out, _, err := execute(t, "test", dir, "--golden", golden, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ box (golden updated)")

	data, err := os.ReadFile(filepath.Join(golden, "box.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "   4  #~~~# \n")

	_, _, err = execute(t, "test", dir, "--golden", golden)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(golden, "box.golden"), []byte("stale\n"), 0644))
	out, _, err = execute(t, "test", dir, "--golden", golden)
	require.Error(t, err)
	assert.Contains(t, out, "rendering does not match golden file")
}

func TestTestCommand_CommandErrors(t *testing.T) {
	badDir := scenarioDir(t, map[string]string{"bad.yaml": "name: bad\nscan_files: x\n"})

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing path", []string{"test", "/nonexistent/scenarios"}, "scenarios not found"},
		{"update without golden", []string{"test", badDir, "--update"}, "--update requires --golden"},
		{"bad filter", []string{"test", badDir, "--filter", "["}, "invalid filter pattern"},
		{"malformed scenario", []string{"test", badDir}, "failed to load scenarios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestTestCommand_MissingArgs(t *testing.T) {
	_, _, err := execute(t, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
