// Package report renders human-readable views of a generated dataset.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"peaksynth-go/pkg/dataset"
)

// Summary writes the dataset statistics.
func Summary(w io.Writer, tag string, s dataset.Stats) error {
	_, err := fmt.Fprintf(w, `dataset %s
  samples (M):          %d
  peaks per sample (K): %d
  kind:                 %s
  distribution:         %s
  grid:                 %d points over %v
  mean bounds:          %v
  scale bounds:         %v
  amplitude bounds:     %v
  average mean:         %.6g
  average scale:        %.6g
  average amplitude:    %.6g (sampled %.6g)
  normalized:           %t
`,
		tag, s.Samples, s.PeaksPerSample, s.Kind, s.Family,
		s.GridPoints, s.GridBounds,
		s.MeanBounds, s.ScaleBounds, s.AmplitudeBounds,
		s.AverageMean, s.AverageScale, s.AverageAmplitude, s.AverageSampledAmplitude,
		s.Normalized)
	return err
}

// Preview writes the first rows and columns of m.
func Preview(w io.Writer, m *mat.Dense, rows, cols int) error {
	r, c := m.Dims()
	rows, cols = min(rows, r), min(cols, c)
	if rows == 0 || cols == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%.4g\n", mat.Formatted(m.Slice(0, rows, 0, cols), mat.Squeeze()))
	return err
}
