package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts values into equal-width bins.
type Histogram struct {
	Bins   []float64 // bin edges, len(Counts)+1
	Counts []float64
}

// NewHistogram bins values into n equal bins spanning [low, high]. Values
// equal to high land in the last bin; values outside the range are dropped.
func NewHistogram(values []float64, low, high float64, n int) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("report: need at least one bin, got %d", n)
	}
	if !(low < high) {
		return nil, fmt.Errorf("report: empty histogram range [%g, %g]", low, high)
	}
	edges := floats.Span(make([]float64, n+1), low, high)
	// stat.Histogram bins [e_i, e_i+1) and needs the last edge strictly above
	// every value.
	edges[n] = math.Nextafter(high, math.Inf(1))

	inRange := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= low && v <= high {
			inRange = append(inRange, v)
		}
	}
	sort.Float64s(inRange)

	counts := stat.Histogram(nil, edges, inRange, nil)
	edges[n] = high
	return &Histogram{Bins: edges, Counts: counts}, nil
}

func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// Print writes one line per bin with a bar scaled to width characters.
func (h *Histogram) Print(w io.Writer, width int) error {
	most := floats.Max(h.Counts)
	for i, c := range h.Counts {
		bar := 0
		if most > 0 {
			bar = int(c / most * float64(width))
		}
		if _, err := fmt.Fprintf(w, "[%8.4g, %8.4g): %s %d\n",
			h.Bins[i], h.Bins[i+1], strings.Repeat("█", bar), int(c)); err != nil {
			return err
		}
	}
	return nil
}
