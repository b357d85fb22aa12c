package tensor

import (
	"fmt"

	"peaksynth-go/internal/parallel"
)

// SumAxis sums along axis and drops it from the result. Negative axes count
// from the end. Reducing a rank-1 tensor yields shape [1].
func SumAxis(a *Tensor, axis int) (*Tensor, error) {
	rank := len(a.shape)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrAxis, axis, rank)
	}
	src := a.Contiguous()
	outer := 1
	for i := 0; i < axis; i++ {
		outer *= src.shape[i]
	}
	inner := 1
	for i := axis + 1; i < rank; i++ {
		inner *= src.shape[i]
	}
	axisSize := src.shape[axis]

	outShape := make([]int, 0, rank-1)
	outShape = append(outShape, src.shape[:axis]...)
	outShape = append(outShape, src.shape[axis+1:]...)
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	out := Zeros(outShape...)
	parallel.For(outer*inner, func(start, end int) {
		for p := start; p < end; p++ {
			o, in := p/inner, p%inner
			base := o*axisSize*inner + in
			sum := 0.0
			for k := 0; k < axisSize; k++ {
				sum += src.data[base+k*inner]
			}
			out.data[p] = sum
		}
	})
	return out, nil
}
