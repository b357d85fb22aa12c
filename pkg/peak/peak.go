// Package peak evaluates unimodal peak kernels parameterized by a center
// (mean), a width (scale) and a height (amplitude).
//
// Scale must be positive. It is not validated here: a zero or negative scale
// yields the IEEE-754 result (±Inf or NaN) of the kernel formula.
package peak

import (
	"fmt"
	"math"
	"strings"

	"peaksynth-go/pkg/tensor"
)

type Kind int

const (
	// Gaussian is a * exp(-(x-m)^2 / (2 s^2)).
	Gaussian Kind = iota
	// Lorentzian is a * s^2 / ((x-m)^2 + s^2).
	Lorentzian
)

var sqrt2Pi = math.Sqrt(2 * math.Pi)

func (k Kind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Lorentzian:
		return "lorentzian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names returned by String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian", "gauss":
		return Gaussian, nil
	case "lorentzian", "lorentz", "cauchy":
		return Lorentzian, nil
	}
	return 0, fmt.Errorf("peak: unknown kind %q", s)
}

// DefaultAmplitude is the amplitude that gives the kernel unit area.
func (k Kind) DefaultAmplitude(scale float64) float64 {
	if k == Lorentzian {
		return 1 / (math.Pi * scale)
	}
	return 1 / (sqrt2Pi * scale)
}

// Eval returns the kernel value at x.
func (k Kind) Eval(x, mean, scale, amplitude float64) float64 {
	d := x - mean
	if k == Lorentzian {
		s2 := scale * scale
		return amplitude * s2 / (d*d + s2)
	}
	return amplitude * math.Exp(-d*d/(2*scale*scale))
}

// EvalDefault evaluates the unit-area kernel at x.
func (k Kind) EvalDefault(x, mean, scale float64) float64 {
	return k.Eval(x, mean, scale, k.DefaultAmplitude(scale))
}

// Evaluate applies the kernel elementwise over the broadcast of x, mean,
// scale and amplitude. A nil amplitude selects DefaultAmplitude.
func Evaluate(k Kind, x, mean, scale, amplitude *tensor.Tensor) (*tensor.Tensor, error) {
	if amplitude == nil {
		return tensor.Apply(func(v []float64) float64 {
			return k.EvalDefault(v[0], v[1], v[2])
		}, x, mean, scale)
	}
	return tensor.Apply(func(v []float64) float64 {
		return k.Eval(v[0], v[1], v[2], v[3])
	}, x, mean, scale, amplitude)
}

// EvaluateGrid evaluates the unit-area kernel at every grid point.
func EvaluateGrid(k Kind, grid []float64, mean, scale float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = k.EvalDefault(x, mean, scale)
	}
	return out
}
