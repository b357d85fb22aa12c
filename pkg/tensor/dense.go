package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 tensor into a gonum dense matrix.
func ToDense(t *Tensor) (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: dense conversion needs rank 2, got %v", ErrShape, t.shape)
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.Data()), nil
}

// FromDense copies a gonum matrix into a rank-2 tensor.
func FromDense(m mat.Matrix) *Tensor {
	r, c := m.Dims()
	out := Zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}
	return out
}

// Column returns a copy of column j of a rank-2 tensor.
func Column(t *Tensor, j int) ([]float64, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: column access needs rank 2, got %v", ErrShape, t.shape)
	}
	col, err := t.Index(1, j)
	if err != nil {
		return nil, err
	}
	return col.Data(), nil
}
