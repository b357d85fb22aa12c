// Package dataset generates labeled synthetic 1-D signals: each sample is a
// sum of randomly parameterized peaks on a shared grid, retained together
// with the parameters that produced it.
package dataset

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"peaksynth-go/pkg/builder"
	"peaksynth-go/pkg/peak"
	"peaksynth-go/pkg/sampler"
	"peaksynth-go/pkg/tensor"
)

// TagLayout is the time layout of Generator.Tag.
const TagLayout = "2006-01-02-15-04-05"

// Generator owns one generated dataset. It is immutable after New.
type Generator struct {
	grid    []float64
	kind    peak.Kind
	samples *tensor.Tensor
	params  *tensor.Tensor
	sampled *tensor.Tensor
	stats   Stats
	tag     string
}

type options struct {
	logger *logrus.Logger
	now    func() time.Time
}

type Option func(*options)

// WithLogger sets the logger generation is reported to.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the clock used for the creation tag.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds the grid, draws all parameters from src and evaluates the
// samples. src is consumed by the parameter draws; a nil src uses the
// process-wide source.
func New(cfg Config, src rand.Source, opts ...Option) (*Generator, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetLevel(logrus.WarnLevel)
	}

	grid, err := cfg.Grid.Build()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := builder.Build(grid, []int{cfg.Samples, cfg.PeaksPerSample}, cfg.Limits,
		sampler.New(src, cfg.Family), builder.Options{Kind: cfg.Kind, Normalize: cfg.Normalize})
	if err != nil {
		return nil, fmt.Errorf("dataset: build: %w", err)
	}

	g := &Generator{
		grid:    grid,
		kind:    cfg.Kind,
		samples: res.Samples,
		params:  res.Params,
		sampled: res.Sampled,
		tag:     o.now().Format(TagLayout),
	}
	g.stats = computeStats(cfg, grid, res.Params, res.Sampled)

	o.logger.WithFields(logrus.Fields{
		"samples":          cfg.Samples,
		"peaks_per_sample": cfg.PeaksPerSample,
		"grid_points":      len(grid),
		"kind":             cfg.Kind.String(),
		"family":           cfg.Family.String(),
		"normalize":        cfg.Normalize,
		"tag":              g.tag,
		"duration":         time.Since(start),
	}).Debug("Generated peak dataset")

	return g, nil
}

// Grid returns a copy of the evaluation grid.
func (g *Generator) Grid() []float64 {
	return append([]float64(nil), g.grid...)
}

func (g *Generator) Kind() peak.Kind { return g.kind }

// Samples returns the (N, M) sample tensor.
func (g *Generator) Samples() *tensor.Tensor { return g.samples }

// SamplesDense returns the samples as an N×M gonum matrix.
func (g *Generator) SamplesDense() *mat.Dense {
	d, err := tensor.ToDense(g.samples)
	if err != nil {
		// samples are always rank 2
		panic(err)
	}
	return d
}

// Params returns the (3, M, K) effective parameters.
func (g *Generator) Params() *tensor.Tensor { return g.params }

// SampledParams returns the (3, M, K) parameters as drawn, before any
// normalization replaced the amplitude channel.
func (g *Generator) SampledParams() *tensor.Tensor { return g.sampled }

func (g *Generator) Stats() Stats { return g.stats }

// Tag is the creation time formatted with TagLayout.
func (g *Generator) Tag() string { return g.tag }

// Len is the number of samples M.
func (g *Generator) Len() int { return g.stats.Samples }
