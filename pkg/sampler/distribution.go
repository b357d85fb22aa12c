package sampler

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Family selects how parameter values are spread over their bounds.
type Family int

const (
	// Uniform draws every value in the interval with equal density.
	Uniform Family = iota
	// TruncatedNormal draws from a normal centered on the interval midpoint
	// with a standard deviation of one sixth of the span, rejecting values
	// outside the interval.
	TruncatedNormal
)

func (f Family) String() string {
	switch f {
	case Uniform:
		return "uniform"
	case TruncatedNormal:
		return "normal"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "":
		return Uniform, nil
	case "normal", "truncated-normal":
		return TruncatedNormal, nil
	}
	return 0, fmt.Errorf("sampler: unknown distribution family %q", s)
}

// Distribution draws single values.
type Distribution interface {
	Rand() float64
}

// NewDistribution returns a distribution of the given family over b. A nil
// src falls back to the process-wide source.
func NewDistribution(f Family, b Bounds, src rand.Source) Distribution {
	if f == TruncatedNormal {
		return &truncatedNormal{
			dist: distuv.Normal{
				Mu:    b.Mid(),
				Sigma: b.Span() / 6,
				Src:   src,
			},
			bounds: b,
		}
	}
	return distuv.Uniform{Min: b.Lower, Max: b.Upper, Src: src}
}

type truncatedNormal struct {
	dist   distuv.Normal
	bounds Bounds
}

func (g *truncatedNormal) Rand() float64 {
	if g.dist.Sigma == 0 {
		return g.dist.Mu
	}
	for {
		val := g.dist.Rand()
		if g.bounds.Contains(val) {
			return val
		}
	}
}
