package gridfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const table = `# energy grid
x   weight
-1.0  0.1
-0.5  0.2

0.0   0.4
0.5   0.2
`

func TestReadMatrix(t *testing.T) {
	m, err := ReadMatrix(strings.NewReader(table))
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.4, m.At(2, 1))
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(strings.NewReader(table), 0)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -0.5, 0, 0.5}, g)

	_, err = ReadGrid(strings.NewReader(table), 2)
	require.Error(t, err)
}

func TestReadErrors(t *testing.T) {
	_, err := ReadMatrix(strings.NewReader("# nothing\n\n"))
	require.ErrorIs(t, err, ErrEmpty)

	_, err = ReadMatrix(strings.NewReader("1 2\n3\n"))
	require.ErrorContains(t, err, "expected 2 columns")

	_, err = ReadMatrix(strings.NewReader("1 2\n3 x\n"))
	require.ErrorContains(t, err, "line 2, column 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n0.25\n0.5\n"), 0o600))
	g, err := Load(path, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.5}, g)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 0)
	require.Error(t, err)
}
