// Package builder evaluates batches of randomly parameterized peaks on a
// shared grid and sums them into training samples.
//
// Axes of the intermediate tensor are (grid, sample, sub-peak). The parameter
// tensors are (channel, sample, sub-peak) with channels ordered mean, scale,
// amplitude.
package builder

import (
	"errors"
	"fmt"

	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/sampler"
	"peaksynth-go/pkg/tensor"
)

// ErrShape is returned when the axes argument is not (samples, peaks per sample).
var ErrShape = errors.New("builder: axes must be exactly (samples, peaks per sample)")

// Parameter channel indices in Result.Params and Result.Sampled.
const (
	ChannelMean = iota
	ChannelScale
	ChannelAmplitude

	NumChannels
)

// Limits holds one interval per parameter channel.
type Limits struct {
	Mean      sampler.Bounds `json:"mean"`
	Scale     sampler.Bounds `json:"scale"`
	Amplitude sampler.Bounds `json:"amplitude"`
}

// Validate checks every channel's interval.
func (l Limits) Validate() error {
	channels := []struct {
		name string
		b    sampler.Bounds
	}{{"mean", l.Mean}, {"scale", l.Scale}, {"amplitude", l.Amplitude}}
	for _, c := range channels {
		if err := c.b.Validate(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

type Options struct {
	Kind      peak.Kind
	Normalize bool
}

// Result is the output of Build.
type Result struct {
	// Samples has shape (N, M): one column per sample.
	Samples *tensor.Tensor
	// Params has shape (3, M, K). With normalization its amplitude channel
	// holds the effective amplitude DefaultAmplitude(scale)/K actually used.
	Params *tensor.Tensor
	// Sampled has shape (3, M, K) and holds the parameters as drawn.
	Sampled *tensor.Tensor
}

// Build draws mean, scale and amplitude for axes = (M, K), evaluates every
// peak on grid and sums over the sub-peak axis. With opts.Normalize each
// sub-peak is rescaled to area 1/K, so each sample has unit area.
func Build(grid []float64, axes []int, limits Limits, s *sampler.Sampler, opts Options) (*Result, error) {
	if len(axes) != 2 {
		return nil, fmt.Errorf("%w: got %d axes %v", ErrShape, len(axes), axes)
	}
	m, k := axes[0], axes[1]
	if m <= 0 || k <= 0 {
		return nil, fmt.Errorf("%w: non-positive axes %v", ErrShape, axes)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrShape)
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	shape := []int{1, m, k}
	mean, err := s.Sample(shape, limits.Mean)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	scale, err := s.Sample(shape, limits.Scale)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	amp, err := s.Sample(shape, limits.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("amplitude: %w", err)
	}

	x, err := tensor.New(grid, len(grid), 1, 1)
	if err != nil {
		return nil, err
	}
	raw, err := peak.Evaluate(opts.Kind, x, mean, scale, amp)
	if err != nil {
		return nil, err
	}

	effective := amp
	if opts.Normalize {
		raw, effective, err = normalize(raw, scale, amp, opts.Kind, k)
		if err != nil {
			return nil, err
		}
	}

	samples, err := tensor.SumAxis(raw, -1)
	if err != nil {
		return nil, err
	}
	params, err := tensor.Concat(0, mean, scale, effective)
	if err != nil {
		return nil, err
	}
	sampled := params
	if opts.Normalize {
		if sampled, err = tensor.Concat(0, mean, scale, amp); err != nil {
			return nil, err
		}
	}
	return &Result{Samples: samples, Params: params, Sampled: sampled}, nil
}

// normalize divides each raw peak by amp*K/DefaultAmplitude(scale), which is
// sqrt(2*pi)*amp*scale*K for a Gaussian, and returns the implied amplitude.
func normalize(raw, scale, amp *tensor.Tensor, kind peak.Kind, k int) (*tensor.Tensor, *tensor.Tensor, error) {
	kf := float64(k)
	denom, err := tensor.Apply(func(v []float64) float64 {
		return v[1] * kf / kind.DefaultAmplitude(v[0])
	}, scale, amp)
	if err != nil {
		return nil, nil, err
	}
	out, err := tensor.Div(raw, denom)
	if err != nil {
		return nil, nil, err
	}
	effective := tensor.Map(scale, func(s float64) float64 {
		return kind.DefaultAmplitude(s) / kf
	})
	return out, effective, nil
}
