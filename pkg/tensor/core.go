// Package tensor is a small strided n-dimensional array of float64 values.
//
// Tensors are row-major and are not mutated once built, so reshapes, index
// selections and broadcast views may share storage with their source.
// Broadcast views use a zero stride on every broadcast axis.
package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned for empty shapes, non-positive dimensions or a
	// data length that does not match the shape.
	ErrShape = errors.New("tensor: invalid shape")

	// ErrBroadcast is returned when shapes cannot be broadcast together.
	ErrBroadcast = errors.New("tensor: incompatible broadcast dimensions")

	// ErrAxis is returned for an axis or index outside the tensor rank or extent.
	ErrAxis = errors.New("tensor: axis out of range")
)

type Tensor struct {
	data    []float64
	shape   []int
	strides []int
}

// New copies data into a tensor of the given shape.
func New(data []float64, shape ...int) (*Tensor, error) {
	total, err := numel(shape)
	if err != nil {
		return nil, err
	}
	if total != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(data), shape)
	}
	return &Tensor{
		data:    append([]float64(nil), data...),
		shape:   append([]int(nil), shape...),
		strides: makeStrides(shape),
	}, nil
}

func MustNew(data []float64, shape ...int) *Tensor {
	t, err := New(data, shape...)
	if err != nil {
		panic(err)
	}
	return t
}

// Scalar returns a rank-1 tensor holding a single value.
func Scalar(v float64) *Tensor {
	return &Tensor{data: []float64{v}, shape: []int{1}, strides: []int{1}}
}

func Zeros(shape ...int) *Tensor {
	total, err := numel(shape)
	if err != nil {
		panic(err)
	}
	return &Tensor{
		data:    make([]float64, total),
		shape:   append([]int(nil), shape...),
		strides: makeStrides(shape),
	}
}

func Full(value float64, shape ...int) *Tensor {
	t := Zeros(shape...)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Numel is the number of logical elements, counting broadcast repeats.
func (t *Tensor) Numel() int {
	n := 1
	for _, dim := range t.shape {
		n *= dim
	}
	return n
}

// Data returns a row-major copy of the logical elements.
func (t *Tensor) Data() []float64 {
	if t.IsContiguous() {
		return append([]float64(nil), t.data...)
	}
	out := make([]float64, t.Numel())
	for p := range out {
		out[p] = t.data[t.offsetOf(p)]
	}
	return out
}

// At returns the element at the given multi-index.
func (t *Tensor) At(index ...int) (float64, error) {
	if len(index) != len(t.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrAxis, len(index), len(t.shape))
	}
	off := 0
	for i, idx := range index {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d of size %d", ErrAxis, idx, i, t.shape[i])
		}
		off += idx * t.strides[i]
	}
	return t.data[off], nil
}

// IsContiguous reports whether the tensor owns a dense row-major buffer.
func (t *Tensor) IsContiguous() bool {
	if len(t.data) != t.Numel() {
		return false
	}
	want := makeStrides(t.shape)
	for i, s := range t.strides {
		if s != want[i] {
			return false
		}
	}
	return true
}

// Contiguous returns t itself when it is already dense, else a dense copy.
func (t *Tensor) Contiguous() *Tensor {
	if t.IsContiguous() {
		return t
	}
	return &Tensor{
		data:    t.Data(),
		shape:   append([]int(nil), t.shape...),
		strides: makeStrides(t.shape),
	}
}

func (t *Tensor) Clone() *Tensor {
	c := t.Contiguous()
	return &Tensor{
		data:    append([]float64(nil), c.data...),
		shape:   append([]int(nil), c.shape...),
		strides: append([]int(nil), c.strides...),
	}
}

// offsetOf maps a row-major logical position to a storage offset.
func (t *Tensor) offsetOf(pos int) int {
	off := 0
	for i := len(t.shape) - 1; i >= 0; i-- {
		dim := t.shape[i]
		off += (pos % dim) * t.strides[i]
		pos /= dim
	}
	return off
}

func numel(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: shape is required", ErrShape)
	}
	total := 1
	for _, dim := range shape {
		if dim <= 0 {
			return 0, fmt.Errorf("%w: dimension %d in %v", ErrShape, dim, shape)
		}
		total *= dim
	}
	return total, nil
}

func makeStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}
