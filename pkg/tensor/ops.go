package tensor

import (
	"fmt"

	"peaksynth-go/internal/parallel"
)

// Apply evaluates fn elementwise over the broadcast of all operands. fn
// receives one value per operand, in operand order; the slice is reused
// between calls and must not be retained.
func Apply(fn func(vals []float64) float64, operands ...*Tensor) (*Tensor, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("%w: apply needs at least one operand", ErrShape)
	}
	shapes := make([][]int, len(operands))
	for i, op := range operands {
		shapes[i] = op.shape
	}
	shape, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}
	views := make([]*Tensor, len(operands))
	for i, op := range operands {
		if views[i], err = BroadcastTo(op, shape); err != nil {
			return nil, err
		}
	}
	out := Zeros(shape...)
	parallel.For(len(out.data), func(start, end int) {
		vals := make([]float64, len(views))
		for p := start; p < end; p++ {
			for i, v := range views {
				vals[i] = v.data[v.offsetOf(p)]
			}
			out.data[p] = fn(vals)
		}
	})
	return out, nil
}

// Map applies fn to every element of t.
func Map(t *Tensor, fn func(float64) float64) *Tensor {
	src := t.Contiguous()
	out := Zeros(src.shape...)
	parallel.For(len(out.data), func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = fn(src.data[i])
		}
	})
	return out
}

func Add(a, b *Tensor) (*Tensor, error) {
	return Apply(func(v []float64) float64 { return v[0] + v[1] }, a, b)
}

func Sub(a, b *Tensor) (*Tensor, error) {
	return Apply(func(v []float64) float64 { return v[0] - v[1] }, a, b)
}

func Mul(a, b *Tensor) (*Tensor, error) {
	return Apply(func(v []float64) float64 { return v[0] * v[1] }, a, b)
}

func Div(a, b *Tensor) (*Tensor, error) {
	return Apply(func(v []float64) float64 { return v[0] / v[1] }, a, b)
}

// Scale multiplies every element of t by s.
func Scale(t *Tensor, s float64) *Tensor {
	return Map(t, func(v float64) float64 { return v * s })
}
