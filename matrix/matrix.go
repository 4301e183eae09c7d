// SPDX-License-Identifier: MIT
// Package matrix - Distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the validated pairwise distances in a flat row-major buffer with
//     the explicit index formula i*n + j (cache-friendly, no per-row slices).
//   - Guarantee safety at the public surface: At/Label return errors instead
//     of panicking.
//   - Keep determinism: the upper triangle is authoritative and mirrored onto
//     the lower triangle at construction, so At(i,j) == At(j,i) exactly.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the non-negative tolerance used by the symmetry and
// zero-diagonal checks. Kept explicit to avoid magic numbers inline.
const DefaultEpsilon = 1e-9

// MinEntities is the smallest meaningful matrix: one merge needs two clusters.
const MinEntities = 2

// Distance is an immutable symmetric pairwise distance matrix with ordered,
// unique entity labels. Construct via New or NewWithEpsilon; the zero value
// is not usable.
type Distance struct {
	labels []string       // ordered entity labels (len == n)
	index  map[string]int // label -> position, for O(1) reverse lookup
	n      int            // entity count (>= MinEntities)
	data   []float64      // flat row-major buffer, len == n*n, exactly symmetric
}

// New validates labels and cells under DefaultEpsilon and builds a Distance.
// cells[i][j] is the distance between labels[i] and labels[j].
//
// Returns an error from the ErrInvalidInput family on the first violation
// found; the message carries the offending label or coordinates.
// Complexity: O(N²) time and memory.
func New(labels []string, cells [][]float64) (*Distance, error) {
	return NewWithEpsilon(labels, cells, DefaultEpsilon)
}

// NewWithEpsilon is New with an explicit symmetry/diagonal tolerance.
// eps must be finite and non-negative, otherwise ErrBadEpsilon.
func NewWithEpsilon(labels []string, cells [][]float64, eps float64) (*Distance, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, fmt.Errorf("NewWithEpsilon(eps=%v): %w", eps, ErrBadEpsilon)
	}

	n := len(labels)
	if n < MinEntities {
		return nil, fmt.Errorf("NewWithEpsilon(n=%d): %w", n, ErrTooFewEntities)
	}
	if len(cells) != n {
		return nil, fmt.Errorf("NewWithEpsilon: %d rows for %d labels: %w", len(cells), n, ErrBadShape)
	}

	// Label uniqueness and reverse index in one pass.
	index := make(map[string]int, n)
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("NewWithEpsilon: label %d: %w", i, ErrEmptyLabel)
		}
		if prev, seen := index[label]; seen {
			return nil, fmt.Errorf("NewWithEpsilon: label %q at %d and %d: %w", label, prev, i, ErrDuplicateLabel)
		}
		index[label] = i
	}

	// Cell validation: shape, finiteness, sign, diagonal, symmetry.
	// The upper triangle (j >= i) is authoritative; the lower triangle is
	// only compared against it, then overwritten by the mirror below.
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		if len(cells[i]) != n {
			return nil, fmt.Errorf("NewWithEpsilon: row %d has %d cells: %w", i, len(cells[i]), ErrBadShape)
		}
		for j := 0; j < n; j++ {
			v := cells[i][j]
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("NewWithEpsilon: cell (%d,%d): %w", i, j, ErrNaNInf)
			case v < 0:
				return nil, fmt.Errorf("NewWithEpsilon: cell (%d,%d)=%v: %w", i, j, v, ErrNegative)
			case i == j && v > eps:
				return nil, fmt.Errorf("NewWithEpsilon: diagonal (%d,%d)=%v: %w", i, j, v, ErrNonZeroDiagonal)
			case j < i && math.Abs(v-cells[j][i]) > eps:
				return nil, fmt.Errorf("NewWithEpsilon: cells (%d,%d) and (%d,%d) differ by %v: %w",
					i, j, j, i, math.Abs(v-cells[j][i]), ErrAsymmetry)
			}
			data[i*n+j] = v
		}
	}

	// Mirror the upper triangle so symmetry holds exactly, not just within
	// eps, and force the diagonal to zero. Downstream determinism depends
	// on this normalization.
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
		for j := i + 1; j < n; j++ {
			data[j*n+i] = data[i*n+j]
		}
	}

	return &Distance{labels: append([]string(nil), labels...), index: index, n: n, data: data}, nil
}

// N returns the entity count.
func (d *Distance) N() int { return d.n }

// Labels returns a copy of the ordered label set.
func (d *Distance) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Label returns the label at position i, or ErrOutOfRange.
func (d *Distance) Label(i int) (string, error) {
	if i < 0 || i >= d.n {
		return "", fmt.Errorf("Label(%d): %w", i, ErrOutOfRange)
	}
	return d.labels[i], nil
}

// Index returns the position of label, and whether it is present.
func (d *Distance) Index(label string) (int, bool) {
	i, ok := d.index[label]
	return i, ok
}

// At returns the distance between entities i and j, or ErrOutOfRange.
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return d.data[i*d.n+j], nil
}

// Dense returns a deep row-major copy of the matrix for algorithmic
// consumption. Mutating the copy never affects the Distance.
// Complexity: O(N²).
func (d *Distance) Dense() [][]float64 {
	out := make([][]float64, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = append([]float64(nil), d.data[i*d.n:(i+1)*d.n]...)
	}
	return out
}

// Mean returns the arithmetic mean over all N·(N−1)/2 distinct pairs,
// computed directly from the stored values. The tree package's incremental
// root annotation must agree with this figure.
func (d *Distance) Mean() float64 {
	var sum float64
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			sum += d.data[i*d.n+j]
		}
	}
	return sum / float64(d.n*(d.n-1)/2)
}
