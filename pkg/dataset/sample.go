package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate"

	"peaksynth-go/pkg/builder"
	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/tensor"
)

// Sample is one generated signal with the K peaks that produced it.
type Sample struct {
	Index     int       `json:"index"`
	Values    []float64 `json:"values"`
	Mean      []float64 `json:"mean"`
	Scale     []float64 `json:"scale"`
	Amplitude []float64 `json:"amplitude"`
}

// Sample returns sample m with its effective parameters.
func (g *Generator) Sample(m int) (Sample, error) {
	if m < 0 || m >= g.Len() {
		return Sample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, m, g.Len())
	}
	values, err := tensor.Column(g.samples, m)
	if err != nil {
		return Sample{}, err
	}
	s := Sample{Index: m, Values: values}
	channels := []struct {
		c   int
		dst *[]float64
	}{
		{builder.ChannelMean, &s.Mean},
		{builder.ChannelScale, &s.Scale},
		{builder.ChannelAmplitude, &s.Amplitude},
	}
	for _, ch := range channels {
		p, err := g.params.Index(0, ch.c)
		if err != nil {
			return Sample{}, err
		}
		row, err := p.Index(0, m)
		if err != nil {
			return Sample{}, err
		}
		*ch.dst = row.Data()
	}
	return s, nil
}

// RandomSample picks a sample uniformly from the first M-1 samples; the
// last sample is only returned when it is the only one. It reads r once and
// does not change the generator. A nil r uses the process-wide source.
func (g *Generator) RandomSample(r *rand.Rand) Sample {
	m := 0
	if n := g.Len() - 1; n > 0 {
		if r == nil {
			m = rand.Intn(n)
		} else {
			m = r.Intn(n)
		}
	}
	s, err := g.Sample(m)
	if err != nil {
		// m is always in range
		panic(err)
	}
	return s
}

// Reconstruct evaluates the sum of the sample's peaks on grid from its
// parameters alone.
func (s Sample) Reconstruct(kind peak.Kind, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		for k := range s.Mean {
			out[i] += kind.Eval(x, s.Mean[k], s.Scale[k], s.Amplitude[k])
		}
	}
	return out
}

// Integral approximates the area under values sampled on grid with the
// trapezoidal rule, so non-uniform grids are handled. It returns 0 when grid
// has fewer than 2 points or values and grid differ in length.
func Integral(values, grid []float64) float64 {
	if len(grid) < 2 || len(values) != len(grid) {
		return 0
	}
	return integrate.Trapezoidal(grid, values)
}
