package linkage

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/kintree/kintree/matrix"
)

// candidate is one closest-pair candidate on the heap: the working distance
// between clusters lo and hi (lo < hi) at the time the pair was created.
// Working distances between two still-active clusters never change, so a
// candidate is valid exactly while both endpoints remain active; stale
// candidates are skipped on pop (lazy invalidation).
type candidate struct {
	d      float64
	lo, hi int
}

// byDistanceThenID orders candidates by distance, then lower id, then higher
// id. The id tie-break is what makes merge order reproducible when several
// pairs share the minimum distance.
func byDistanceThenID(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	switch {
	case x.d < y.d:
		return -1
	case x.d > y.d:
		return 1
	case x.lo != y.lo:
		return x.lo - y.lo
	default:
		return x.hi - y.hi
	}
}

// Run clusters the entities of d agglomeratively under the given criterion
// and returns the ordered merge history of length N−1.
//
// Cluster ids are arena indices: 0..N−1 are the entities in matrix order,
// and the k-th merge creates id N+k; the final merge's id is 2N−2 (the root).
//
// Errors:
//   - ErrNilMatrix         — d is nil.
//   - ErrUnsupportedMethod — method is not one of the five criteria.
//
// The matrix itself is validated at construction (see the matrix package),
// so Run performs no numeric re-validation.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Run(d *matrix.Distance, method Method) ([]Merge, error) {
	if d == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilMatrix)
	}
	rule, ok := rules(method)
	if !ok {
		return nil, fmt.Errorf("Run(method=%d): %w", int(method), ErrUnsupportedMethod)
	}

	n := d.N()
	total := 2*n - 1 // leaves + internal clusters, the whole arena

	// Arena state, indexed by cluster id.
	dist := make([][]float64, total) // working inter-cluster distances
	active := make([]bool, total)    // still mergeable?
	size := make([]int, total)       // leaf count per cluster

	dense := d.Dense()
	heap := binaryheap.NewWith(byDistanceThenID)

	// One singleton cluster per entity; seed every initial pair.
	for i := 0; i < n; i++ {
		row := make([]float64, total)
		copy(row, dense[i])
		dist[i] = row
		active[i] = true
		size[i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			heap.Push(candidate{d: dist[i][j], lo: i, hi: j})
		}
	}

	history := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		// Pop until a live pair surfaces. The heap always holds every pair
		// of currently active clusters, so this cannot run dry.
		var cur candidate
		for {
			v, _ := heap.Pop()
			cur = v.(candidate)
			if active[cur.lo] && active[cur.hi] {
				break
			}
		}

		a, b := cur.lo, cur.hi
		k := n + step
		active[a], active[b] = false, false
		active[k] = true
		size[k] = size[a] + size[b]

		// Rewrite distances from the new cluster to every survivor and
		// enqueue the fresh pairs. k is always the highest id so far.
		row := make([]float64, total)
		for c := 0; c < k; c++ {
			if !active[c] {
				continue
			}
			v := rule(dist[a][c], dist[b][c], cur.d, size[a], size[b], size[c])
			row[c] = v
			dist[c][k] = v
			heap.Push(candidate{d: v, lo: c, hi: k})
		}
		dist[k] = row

		// Reclaim the dead clusters' rows; only their columns in surviving
		// rows were still referenced, and those were just consumed.
		dist[a], dist[b] = nil, nil

		history = append(history, Merge{A: a, B: b, ID: k, Height: cur.d, Size: size[k]})
	}

	return history, nil
}
