package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrShape)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrShape)

	_, err = New([]float64{}, 0)
	require.ErrorIs(t, err, ErrShape)

	require.Panics(t, func() { MustNew([]float64{1}, 2) })
}

func TestNewCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	a := MustNew(src, 2, 2)
	src[0] = 99
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestAt(t *testing.T) {
	a := MustNew([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, ErrAxis)
	_, err = a.At(0)
	require.ErrorIs(t, err, ErrAxis)
}

func TestFullAndScalar(t *testing.T) {
	f := Full(2.5, 2, 3)
	require.Equal(t, []int{2, 3}, f.Shape())
	require.Equal(t, 6, f.Numel())
	for _, v := range f.Data() {
		require.Equal(t, 2.5, v)
	}

	s := Scalar(7)
	require.Equal(t, []int{1}, s.Shape())
	require.Equal(t, []float64{7}, s.Data())
}

func TestCloneIsIndependent(t *testing.T) {
	a := MustNew([]float64{1, 2}, 2)
	c := a.Clone()
	c.data[0] = 42
	require.Equal(t, []float64{1, 2}, a.Data())
}
