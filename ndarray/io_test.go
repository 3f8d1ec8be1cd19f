package ndarray_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numerics/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteTo_Format pins the exact text layout.
func TestWriteTo_Format(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{0.5, 1, 2, 3}, 2, 2)
	var buf bytes.Buffer
	require.NoError(t, ndarray.WriteTo(&buf, a, 6, []string{"  first ", "second"}))
	assert.Equal(t, "# first\n# second\n2 2 \n0.5 1 2 3\n", buf.String())
}

// TestRoundTrip_WithComments writes and reads back data, shape and comments.
func TestRoundTrip_WithComments(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{1.0 / 3, -2.5e-12, 7, 8, 9, 10}, 3, 2)
	var buf bytes.Buffer
	require.NoError(t, ndarray.WriteTo(&buf, a, ndarray.DefaultPrecision, []string{"theta=1"}))

	b, comments, err := ndarray.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"theta=1"}, comments)
	assert.Equal(t, a.Shape(), b.Shape())
	assert.InDeltaSlice(t, a.Data(), b.Data(), 1e-15)
}

// TestWriteTo_MaskedAsNaN writes masked entries as nan.
func TestWriteTo_MaskedAsNaN(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{1, 2}, 2)
	require.NoError(t, a.SetMask([]bool{false, true}))
	var buf bytes.Buffer
	require.NoError(t, ndarray.WriteTo(&buf, a, 0, nil))
	assert.Equal(t, "2 \n1 nan\n", buf.String())

	b, _, err := ndarray.ReadFrom(&buf)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(b.Data()[1]))
}

// TestReadFrom_MultiLineData accepts values spread over several lines.
func TestReadFrom_MultiLineData(t *testing.T) {
	in := "# c\n2 3\n1 2\n3 4 5\n6\n"
	a, _, err := ndarray.ReadFrom(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
}

// TestReadFrom_Errors covers malformed headers and short data.
func TestReadFrom_Errors(t *testing.T) {
	_, _, err := ndarray.ReadFrom(strings.NewReader("# only comments\n"))
	assert.ErrorIs(t, err, ndarray.ErrBadHeader)

	_, _, err = ndarray.ReadFrom(strings.NewReader("2 x\n1 2\n"))
	assert.ErrorIs(t, err, ndarray.ErrBadHeader)

	_, _, err = ndarray.ReadFrom(strings.NewReader("3\n1 2\n"))
	assert.ErrorIs(t, err, ndarray.ErrShortData)

	_, _, err = ndarray.ReadFrom(strings.NewReader("2\n1 abc\n"))
	assert.Error(t, err)
}

// TestFileRoundTrip exercises WriteFile / ReadFile on disk.
func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fs.txt")
	a, _ := ndarray.FromSlice([]float64{1, 2, 3}, 3)
	require.NoError(t, ndarray.WriteFile(path, a, 8, []string{"x"}))

	b, comments, err := ndarray.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, comments)
	assert.Equal(t, a.Data(), b.Data())

	_, _, err = ndarray.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
