package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seep/internal/testutil"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("scan.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/scan.YML"))
	assert.Equal(t, FormatCUE, DetectFormat("scan.cue"))
	assert.Equal(t, FormatText, DetectFormat("scan.txt"))
	assert.Equal(t, FormatText, DetectFormat("input"))
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"example.txt":  testutil.ExampleScanText,
		"example.yaml": exampleYAML,
		"example.cue":  exampleCUE,
	}

	want := testutil.ExampleScan().Veins()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, path, s.Source, name)
		assert.Equal(t, want, s.Veins(), name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, IsParseError(err))
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("x=1, y=1..2"), "s", Format("toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scan format")
}
