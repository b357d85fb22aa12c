package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		shapes [][]int
		want   []int
		err    error
	}{
		{name: "same", shapes: [][]int{{2, 3}, {2, 3}}, want: []int{2, 3}},
		{name: "grid against params", shapes: [][]int{{5, 1, 1}, {1, 4, 3}}, want: []int{5, 4, 3}},
		{name: "lower rank", shapes: [][]int{{5, 1, 1}, {3}}, want: []int{5, 1, 3}},
		{name: "scalar", shapes: [][]int{{1}, {2, 2}}, want: []int{2, 2}},
		{name: "mismatch", shapes: [][]int{{2, 3}, {3, 2}}, err: ErrBroadcast},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BroadcastShapes(tc.shapes...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestBroadcastToSharesData(t *testing.T) {
	a := MustNew([]float64{1, 2, 3}, 1, 3)
	b, err := BroadcastTo(a, []int{2, 3})
	require.NoError(t, err)
	require.False(t, b.IsContiguous())
	require.Equal(t, []float64{1, 2, 3, 1, 2, 3}, b.Data())

	_, err = BroadcastTo(a, []int{3})
	require.ErrorIs(t, err, ErrBroadcast)
	_, err = BroadcastTo(a, []int{2, 4})
	require.ErrorIs(t, err, ErrBroadcast)
}

func TestReshape(t *testing.T) {
	a := MustNew([]float64{1, 2, 3, 4, 5, 6}, 6)
	b, err := a.Reshape(2, -1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, b.Shape())
	v, err := b.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = a.Reshape(4, -1)
	require.ErrorIs(t, err, ErrShape)
	_, err = a.Reshape(-1, -1)
	require.ErrorIs(t, err, ErrShape)
	_, err = a.Reshape(5)
	require.ErrorIs(t, err, ErrShape)
}

func TestReshapeOfBroadcastView(t *testing.T) {
	a := MustNew([]float64{1, 2}, 2, 1)
	v, err := BroadcastTo(a, []int{2, 2})
	require.NoError(t, err)
	r, err := v.Reshape(4)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 2, 2}, r.Data())
}
