// Package linkage: method enumeration, merge record, and sentinel errors.
package linkage

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects the inter-cluster distance criterion.
type Method int

const (
	// Ward minimizes the total within-cluster variance increase per merge.
	Ward Method = iota

	// Complete uses the furthest-neighbour distance max(d(A,C), d(B,C)).
	Complete

	// Weighted is WPGMA: the unweighted mean (d(A,C)+d(B,C))/2.
	Weighted

	// Average is UPGMA: the cluster-size-weighted mean of d(A,C) and d(B,C).
	Average

	// Centroid approximates centroid distance via the Lance–Williams update
	// on pairwise distances and cluster sizes (no feature space needed).
	Centroid
)

// DefaultMethod is used by callers that do not configure a criterion.
const DefaultMethod = Ward

// methodNames maps Method values to their canonical lowercase names,
// the same spellings accepted by ParseMethod.
var methodNames = map[Method]string{
	Ward:     "ward",
	Complete: "complete",
	Weighted: "weighted",
	Average:  "average",
	Centroid: "centroid",
}

// String returns the canonical lowercase name, or "unknown(<n>)".
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// Valid reports whether m is one of the five supported criteria.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// ParseMethod resolves a case-insensitive method name to its Method value.
// Unknown names fail with ErrUnsupportedMethod carrying the offending name.
func ParseMethod(name string) (Method, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, canonical := range methodNames {
		if want == canonical {
			return m, nil
		}
	}
	return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnsupportedMethod)
}

// Merge records one agglomeration step. Cluster ids are arena indices:
// ids 0..N−1 are the original entities in matrix order; the merge at
// position k of the history creates cluster id N+k. A < B always holds.
type Merge struct {
	A, B   int     // ids of the merged clusters, A < B
	ID     int     // id of the resulting cluster (N + position in history)
	Height float64 // linkage-criterion distance at merge time
	Size   int     // leaf count of the resulting cluster
}

var (
	// ErrUnsupportedMethod - the requested linkage criterion does not exist.
	ErrUnsupportedMethod = errors.New("linkage: unsupported method")

	// ErrNilMatrix - Run was handed a nil distance matrix.
	ErrNilMatrix = errors.New("linkage: nil distance matrix")
)
