package sampler

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBounds is returned for an interval with Lower > Upper or a
	// NaN or infinite end.
	ErrInvalidBounds = errors.New("sampler: lower bound must not exceed upper bound")

	// ErrBoundsViolation means a drawn value fell outside its interval. It
	// points at a defect in the distribution, not at caller input.
	ErrBoundsViolation = errors.New("sampler: drawn value outside bounds")
)

// Bounds is the closed interval [Lower, Upper].
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// NewBounds returns a validated interval.
func NewBounds(lower, upper float64) (Bounds, error) {
	b := Bounds{Lower: lower, Upper: upper}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate checks that the interval is finite and well formed.
func (b Bounds) Validate() error {
	if !finite(b.Lower) || !finite(b.Upper) || b.Lower > b.Upper {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, b.Lower, b.Upper)
	}
	return nil
}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

func (b Bounds) Span() float64 {
	return b.Upper - b.Lower
}

func (b Bounds) Mid() float64 {
	return b.Lower + b.Span()/2
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Lower, b.Upper)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
