// Package sampler draws peak parameters independently within closed bounds.
package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"

	"peaksynth-go/pkg/tensor"
)

// Sampler draws values from one distribution family using an injected
// random source. A Sampler is not safe for concurrent use unless its source is.
type Sampler struct {
	src    rand.Source
	family Family
}

// New returns a sampler over src. A nil src uses the process-wide source.
func New(src rand.Source, family Family) *Sampler {
	return &Sampler{src: src, family: family}
}

func (s *Sampler) Family() Family {
	return s.family
}

// Draw returns n i.i.d. values within b.
func (s *Sampler) Draw(n int, b Bounds) ([]float64, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return drawFrom(NewDistribution(s.family, b, s.src), n, b)
}

// drawFrom draws n values from dist and checks each against b.
func drawFrom(dist Distribution, n int, b Bounds) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v := dist.Rand()
		if !b.Contains(v) {
			return nil, fmt.Errorf("%w: %g not in %v", ErrBoundsViolation, v, b)
		}
		out[i] = v
	}
	return out, nil
}

// Sample returns a tensor of the given shape filled with i.i.d. values within b.
func (s *Sampler) Sample(shape []int, b Bounds) (*tensor.Tensor, error) {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	if len(shape) == 0 || n <= 0 {
		return nil, fmt.Errorf("%w: %v", tensor.ErrShape, shape)
	}
	values, err := s.Draw(n, b)
	if err != nil {
		return nil, err
	}
	return tensor.New(values, shape...)
}
