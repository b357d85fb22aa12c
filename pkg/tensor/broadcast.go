package tensor

import "fmt"

// BroadcastShapes returns the shape that all of the given shapes broadcast
// to. Shapes are aligned on their trailing axes; a dimension of 1 stretches
// to match the other operands.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make([]int, rank)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		off := rank - len(s)
		for i, dim := range s {
			switch {
			case dim == out[off+i] || dim == 1:
			case out[off+i] == 1:
				out[off+i] = dim
			default:
				return nil, fmt.Errorf("%w: %v", ErrBroadcast, shapes)
			}
		}
	}
	return out, nil
}

// BroadcastTo returns a view of t with the target shape. No data is copied:
// broadcast axes get a zero stride.
func BroadcastTo(t *Tensor, target []int) (*Tensor, error) {
	srcRank := len(t.shape)
	tgtRank := len(target)
	if tgtRank < srcRank {
		return nil, fmt.Errorf("%w: cannot broadcast %v to lower rank %v", ErrBroadcast, t.shape, target)
	}
	off := tgtRank - srcRank
	strides := make([]int, tgtRank)
	for i := tgtRank - 1; i >= 0; i-- {
		srcDim, stride := 1, 0
		if i-off >= 0 {
			srcDim = t.shape[i-off]
			stride = t.strides[i-off]
		}
		if srcDim == target[i] {
			strides[i] = stride
			continue
		}
		if srcDim != 1 {
			return nil, fmt.Errorf("%w: %v to %v", ErrBroadcast, t.shape, target)
		}
	}
	return &Tensor{
		data:    t.data,
		shape:   append([]int(nil), target...),
		strides: strides,
	}, nil
}

// Reshape returns a tensor with the same elements and a new shape. A single
// dimension may be -1 and is inferred from the element count.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: reshape shape required", ErrShape)
	}
	shape = append([]int(nil), shape...)
	total := t.Numel()
	prod := 1
	infer := -1
	for i, dim := range shape {
		if dim == -1 {
			if infer != -1 {
				return nil, fmt.Errorf("%w: multiple inferred dimensions", ErrShape)
			}
			infer = i
			continue
		}
		if dim <= 0 {
			return nil, fmt.Errorf("%w: invalid reshape dimension %d", ErrShape, dim)
		}
		prod *= dim
	}
	if infer != -1 {
		if total%prod != 0 {
			return nil, fmt.Errorf("%w: cannot infer dimension of %v from %d elements", ErrShape, shape, total)
		}
		shape[infer] = total / prod
		prod = total
	}
	if prod != total {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShape, t.shape, shape)
	}
	src := t.Contiguous()
	return &Tensor{
		data:    src.data,
		shape:   shape,
		strides: makeStrides(shape),
	}, nil
}
