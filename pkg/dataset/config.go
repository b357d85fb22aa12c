package dataset

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"peaksynth-go/pkg/builder"
	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/sampler"
)

var (
	// ErrConfiguration is returned when neither grid limits with a point
	// count nor an explicit grid were supplied, or counts are not positive.
	ErrConfiguration = errors.New("dataset: invalid configuration")

	// ErrGrid is returned for a supplied grid that is not strictly increasing.
	ErrGrid = errors.New("dataset: grid must be strictly increasing")

	// ErrIndex is returned for a sample index outside [0, M).
	ErrIndex = errors.New("dataset: sample index out of range")
)

// GridSpec describes the evaluation grid. Values, when set, overrides
// Limits and Points.
type GridSpec struct {
	Limits *sampler.Bounds `json:"limits,omitempty"`
	Points int             `json:"points,omitempty"`
	Values []float64       `json:"values,omitempty"`
}

// Build returns the grid points, inclusive of both limits.
func (g GridSpec) Build() ([]float64, error) {
	if g.Values != nil {
		if len(g.Values) < 2 {
			return nil, fmt.Errorf("%w: %d points", ErrGrid, len(g.Values))
		}
		for i := 1; i < len(g.Values); i++ {
			if !(g.Values[i] > g.Values[i-1]) {
				return nil, fmt.Errorf("%w: x[%d]=%g after x[%d]=%g", ErrGrid, i, g.Values[i], i-1, g.Values[i-1])
			}
		}
		if math.IsInf(g.Values[0], 0) || math.IsInf(g.Values[len(g.Values)-1], 0) {
			return nil, fmt.Errorf("%w: infinite endpoint", ErrGrid)
		}
		return append([]float64(nil), g.Values...), nil
	}
	if g.Limits == nil || g.Points == 0 {
		return nil, fmt.Errorf("%w: either grid limits with a point count or an explicit grid is required", ErrConfiguration)
	}
	if g.Points < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", ErrConfiguration, g.Points)
	}
	if err := g.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("%w: grid limits: %w", ErrConfiguration, err)
	}
	if g.Limits.Lower == g.Limits.Upper {
		return nil, fmt.Errorf("%w: grid limits %v are empty", ErrGrid, *g.Limits)
	}
	return floats.Span(make([]float64, g.Points), g.Limits.Lower, g.Limits.Upper), nil
}

// Config holds everything needed to generate a dataset.
type Config struct {
	Grid           GridSpec       `json:"grid"`
	Samples        int            `json:"samples"`
	PeaksPerSample int            `json:"peaks_per_sample"`
	Limits         builder.Limits `json:"limits"`
	Kind           peak.Kind      `json:"kind"`
	Family         sampler.Family `json:"family"`
	Normalize      bool           `json:"normalize"`
}

// Validate checks counts and bounds. Grid problems are reported by GridSpec.Build.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrConfiguration, c.Samples)
	}
	if c.PeaksPerSample <= 0 {
		return fmt.Errorf("%w: peaks per sample must be positive, got %d", ErrConfiguration, c.PeaksPerSample)
	}
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}
