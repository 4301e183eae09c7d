package tabio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kintree/kintree/matrix"
)

// ErrBadTable - the CSV structure itself is unusable (not the numeric
// content; that is validated by matrix.New and reported as ErrInvalidInput).
var ErrBadTable = errors.New("tabio: malformed table")

// ReadMatrix parses a labeled distance matrix from CSV and validates it
// through matrix.New. See the package documentation for the layout.
func ReadMatrix(r io.Reader) (*matrix.Distance, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %v: %w", err, ErrBadTable)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("ReadMatrix: %d rows: %w", len(rows), ErrBadTable)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("ReadMatrix: header has %d columns: %w", len(header), ErrBadTable)
	}
	labels := header[1:] // corner cell ignored
	n := len(labels)
	if len(rows)-1 != n {
		return nil, fmt.Errorf("ReadMatrix: %d data rows for %d labels: %w", len(rows)-1, n, ErrBadTable)
	}

	cells := make([][]float64, n)
	for i, row := range rows[1:] {
		if len(row) != n+1 {
			return nil, fmt.Errorf("ReadMatrix: row %d has %d columns, want %d: %w", i+1, len(row), n+1, ErrBadTable)
		}
		if row[0] != labels[i] {
			return nil, fmt.Errorf("ReadMatrix: row %d labeled %q, header says %q: %w", i+1, row[0], labels[i], ErrBadTable)
		}
		cells[i] = make([]float64, n)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadMatrix: cell (%d,%d)=%q: %w", i, j, cell, ErrBadTable)
			}
			cells[i][j] = v
		}
	}

	return matrix.New(labels, cells)
}
