package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestConcatChannels(t *testing.T) {
	a := MustNew([]float64{1, 2, 3, 4}, 1, 2, 2)
	b := MustNew([]float64{5, 6, 7, 8}, 1, 2, 2)
	c, err := Concat(0, a, b)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2}, c.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, c.Data())

	inner, err := Concat(-1, MustNew([]float64{1, 2}, 2, 1), MustNew([]float64{3, 4, 5, 6}, 2, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 4, 2, 5, 6}, inner.Data())

	_, err = Concat(0, a, MustNew([]float64{1, 2}, 1, 2))
	require.ErrorIs(t, err, ErrShape)
	_, err = Concat(0)
	require.ErrorIs(t, err, ErrShape)
}

func TestIndex(t *testing.T) {
	params := MustNew([]float64{
		1, 2, 3,
		4, 5, 6,

		7, 8, 9,
		10, 11, 12,
	}, 2, 2, 3)

	ch, err := params.Index(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, ch.Shape())
	require.Equal(t, []float64{7, 8, 9, 10, 11, 12}, ch.Data())

	row, err := ch.Index(0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 11, 12}, row.Data())

	col, err := params.Index(2, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 7, 10}, col.Data())

	_, err = params.Index(0, 2)
	require.ErrorIs(t, err, ErrAxis)
}

func TestDenseBridge(t *testing.T) {
	a := MustNew([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	d, err := ToDense(a)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 5.0, d.At(2, 0))

	back := FromDense(d)
	require.Equal(t, a.Data(), back.Data())

	col, err := Column(a, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	_, err = ToDense(MustNew([]float64{1}, 1))
	require.ErrorIs(t, err, ErrShape)

	require.True(t, mat.Equal(d, mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})))
}
