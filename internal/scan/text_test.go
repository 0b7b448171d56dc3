package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seep/internal/ir"
	"github.com/roach88/seep/internal/testutil"
)

func TestParseText_Example(t *testing.T) {
	s, err := ParseText([]byte(testutil.ExampleScanText), "example")
	require.NoError(t, err)

	assert.Equal(t, testutil.ExampleScan(), s)
	assert.Equal(t, 8, s.Len())
	assert.Len(t, s.X, 6)
	assert.Len(t, s.Y, 2)
}

func TestParseText_CRLFAndTrailingBlankLines(t *testing.T) {
	s, err := ParseText([]byte("x=495, y=2..7\r\ny=7, x=495..501\r\n\r\n"), "crlf")
	require.NoError(t, err)

	assert.Equal(t, []ir.Vein{testutil.X(495, 2, 7)}, s.X)
	assert.Equal(t, []ir.Vein{testutil.Y(7, 495, 501)}, s.Y)
}

func TestParseText_InvertedRangeParses(t *testing.T) {
	s, err := ParseText([]byte("x=495, y=7..2\n"), "inv")
	require.NoError(t, err)
	assert.Equal(t, testutil.X(495, 7, 2), s.X[0])
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		column  int
		message string
	}{
		{
			name:    "empty input",
			input:   "",
			message: "no veins found",
		},
		{
			name:    "only blank lines",
			input:   "\n\n",
			message: "no veins found",
		},
		{
			name:    "bad axis",
			input:   "x=495, y=2..7\nz=1, y=1..2\n",
			line:    2,
			column:  1,
			message: `expected axis x or y, got "z"`,
		},
		{
			name:    "same axis twice",
			input:   "x=495, x=1..2",
			line:    1,
			column:  6,
			message: `expected ", y="`,
		},
		{
			name:    "missing number",
			input:   "x=, y=1..2",
			line:    1,
			column:  3,
			message: "expected number",
		},
		{
			name:    "missing range",
			input:   "y=7, x=495",
			line:    1,
			column:  11,
			message: `expected ".."`,
		},
		{
			name:    "trailing input",
			input:   "x=495, y=2..7 ",
			line:    1,
			column:  14,
			message: `unexpected trailing input " "`,
		},
		{
			name:    "blank line between veins",
			input:   "x=495, y=2..7\n\nx=501, y=3..7\n",
			line:    2,
			column:  1,
			message: "expected axis, got end of line",
		},
		{
			name:    "negative coordinate",
			input:   "x=-1, y=1..2",
			line:    1,
			column:  3,
			message: "expected number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.input), "scan.txt")
			require.Error(t, err)
			require.True(t, IsParseError(err))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "scan.txt", pe.Source)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
			assert.Equal(t, tt.message, pe.Message)
		})
	}
}

func TestParseError_Format(t *testing.T) {
	assert.Equal(t, "scan.txt:2:1: boom", (&ParseError{Source: "scan.txt", Line: 2, Column: 1, Message: "boom"}).Error())
	assert.Equal(t, "scan.txt:2: boom", (&ParseError{Source: "scan.txt", Line: 2, Message: "boom"}).Error())
	assert.Equal(t, "<input>: boom", (&ParseError{Message: "boom"}).Error())
}

func TestFormatScan_RoundTrip(t *testing.T) {
	original := testutil.ExampleScan()

	text := FormatScan(original)
	parsed, err := ParseText([]byte(text), original.Source)
	require.NoError(t, err)

	assert.Equal(t, original, parsed)
}
