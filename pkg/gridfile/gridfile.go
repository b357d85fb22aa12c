// Package gridfile reads evaluation grids from whitespace-separated text
// tables. Blank lines and lines starting with '#' are skipped, and a first
// non-numeric line is treated as a header.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmpty is returned when a table has no data rows.
var ErrEmpty = errors.New("gridfile: no data rows")

// ReadMatrix parses a table into a dense matrix.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	hasHeader := false
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if !hasHeader && len(rows) == 0 {
			if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
				hasHeader = true
				continue
			}
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("gridfile: line %d, column %d: %w", line, i+1, err)
			}
			row[i] = val
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("gridfile: line %d: expected %d columns, got %d", line, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

// ReadGrid returns column col of the table in r.
func ReadGrid(r io.Reader, col int) ([]float64, error) {
	m, err := ReadMatrix(r)
	if err != nil {
		return nil, err
	}
	_, cols := m.Dims()
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("gridfile: column %d out of range for %d columns", col, cols)
	}
	return mat.Col(nil, col, m), nil
}

// Load reads column col of the table stored at path.
func Load(path string, col int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	defer f.Close()
	return ReadGrid(f, col)
}
