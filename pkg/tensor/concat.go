package tensor

import "fmt"

// Concat joins tensors along an existing axis. All other dimensions must match.
func Concat(axis int, ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: concat needs at least one tensor", ErrShape)
	}
	first := ts[0].shape
	rank := len(first)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrAxis, axis, rank)
	}
	outShape := append([]int(nil), first...)
	outShape[axis] = 0
	for _, t := range ts {
		if len(t.shape) != rank {
			return nil, fmt.Errorf("%w: concat rank mismatch %v vs %v", ErrShape, first, t.shape)
		}
		for i, dim := range t.shape {
			if i != axis && dim != first[i] {
				return nil, fmt.Errorf("%w: concat shape mismatch %v vs %v", ErrShape, first, t.shape)
			}
		}
		outShape[axis] += t.shape[axis]
	}
	outer := 1
	for i := 0; i < axis; i++ {
		outer *= outShape[i]
	}
	inner := 1
	for i := axis + 1; i < rank; i++ {
		inner *= outShape[i]
	}
	out := Zeros(outShape...)
	dst := 0
	for o := 0; o < outer; o++ {
		for _, t := range ts {
			src := t.Contiguous()
			block := src.shape[axis] * inner
			copy(out.data[dst:dst+block], src.data[o*block:(o+1)*block])
			dst += block
		}
	}
	return out, nil
}

// Index selects position i along axis and drops that axis. Selecting from a
// rank-1 tensor yields shape [1].
func (t *Tensor) Index(axis, i int) (*Tensor, error) {
	rank := len(t.shape)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrAxis, axis, rank)
	}
	if i < 0 || i >= t.shape[axis] {
		return nil, fmt.Errorf("%w: index %d on axis %d of size %d", ErrAxis, i, axis, t.shape[axis])
	}
	shape := make([]int, 0, rank-1)
	strides := make([]int, 0, rank-1)
	for d := range t.shape {
		if d == axis {
			continue
		}
		shape = append(shape, t.shape[d])
		strides = append(strides, t.strides[d])
	}
	if len(shape) == 0 {
		shape, strides = []int{1}, []int{1}
	}
	view := &Tensor{
		data:    t.data[i*t.strides[axis]:],
		shape:   shape,
		strides: strides,
	}
	return view.Contiguous(), nil
}
