package tree

import (
	"errors"
	"fmt"

	"github.com/kintree/kintree/linkage"
	"github.com/kintree/kintree/matrix"
)

var (
	// ErrNilMatrix - Build was handed a nil distance matrix.
	ErrNilMatrix = errors.New("tree: nil distance matrix")

	// ErrBadHistory - the merge history does not describe a full dendrogram
	// over the matrix entities (wrong length, bad ids, reused clusters).
	ErrBadHistory = errors.New("tree: malformed merge history")
)

// Build converts a merge history over d into the annotated rooted tree.
// The history must come from clustering the same matrix: exactly N−1 merges
// with arena ids as produced by linkage.Run. The node created by the final
// merge is the root.
//
// Each internal node's Mean is the exact mean of original pairwise distances
// between the leaves it subtends, maintained incrementally (see package doc).
// Child order is deterministic: the child containing the smallest original
// leaf index goes left.
//
// Complexity: O(N²) time, O(N²) transient memory (the dense matrix copy).
func Build(d *matrix.Distance, history []linkage.Merge) (*Node, error) {
	if d == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilMatrix)
	}
	n := d.N()
	if len(history) != n-1 {
		return nil, fmt.Errorf("Build: %d merges for %d entities: %w", len(history), n, ErrBadHistory)
	}

	dense := d.Dense()
	labels := d.Labels()
	total := 2*n - 1

	// Arena state, indexed by cluster id.
	nodes := make([]*Node, total)    // finished subtree per cluster
	members := make([][]int, total)  // original leaf indices per cluster
	sum := make([]float64, total)    // within-cluster pairwise distance sum
	count := make([]int, total)      // within-cluster pair count
	minLeaf := make([]int, total)    // smallest leaf index, for child order
	consumed := make([]bool, total)  // cluster already merged into a parent

	for i := 0; i < n; i++ {
		nodes[i] = &Node{Label: labels[i], Index: i}
		members[i] = []int{i}
		minLeaf[i] = i
	}

	for step, m := range history {
		id := n + step
		if m.ID != id {
			return nil, fmt.Errorf("Build: merge %d has id %d, want %d: %w", step, m.ID, id, ErrBadHistory)
		}
		if m.A < 0 || m.A >= id || m.B < 0 || m.B >= id || m.A == m.B {
			return nil, fmt.Errorf("Build: merge %d joins %d and %d: %w", step, m.A, m.B, ErrBadHistory)
		}
		if consumed[m.A] || consumed[m.B] {
			return nil, fmt.Errorf("Build: merge %d reuses a consumed cluster: %w", step, ErrBadHistory)
		}
		consumed[m.A], consumed[m.B] = true, true

		a, b := members[m.A], members[m.B]

		// Cross term: each (i∈A, j∈B) pair contributes exactly once over
		// the whole run, so the total annotation cost stays O(N²).
		var cross float64
		for _, i := range a {
			row := dense[i]
			for _, j := range b {
				cross += row[j]
			}
		}
		sum[id] = sum[m.A] + sum[m.B] + cross
		count[id] = count[m.A] + count[m.B] + len(a)*len(b)

		left, right := m.A, m.B
		if minLeaf[right] < minLeaf[left] {
			left, right = right, left
		}
		nodes[id] = &Node{
			Index: -1,
			Left:  nodes[left],
			Right: nodes[right],
			Mean:  sum[id] / float64(count[id]),
		}
		members[id] = append(a, b...)
		minLeaf[id] = minLeaf[left]
		members[m.A], members[m.B] = nil, nil
	}

	return nodes[total-1], nil
}
