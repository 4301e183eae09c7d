// Package linkage implements agglomerative hierarchical clustering over a
// validated distance matrix.
//
// 🚀 What is agglomerative clustering?
//
//	Start with one cluster per entity, then repeatedly merge the two
//	closest clusters until a single cluster remains. The N−1 recorded
//	merges form a dendrogram. "Closest" is defined by the linkage
//	criterion; after each merge the distances from the new cluster to
//	every survivor are rewritten by a Lance–Williams update rule.
//
// ✨ Supported criteria (Method):
//   - Ward     — minimal within-cluster variance increase (default)
//   - Complete — furthest neighbour: max(d(A,C), d(B,C))
//   - Weighted — WPGMA: (d(A,C)+d(B,C))/2
//   - Average  — UPGMA: size-weighted mean of d(A,C), d(B,C)
//   - Centroid — Lance–Williams centroid approximation on pairwise distances
//
// Determinism:
//
//	Candidate pairs are drawn from a min-heap ordered by
//	(distance, lower cluster id, higher cluster id), so ties always break
//	toward the lowest index pair and two runs over the same input produce
//	identical merge histories.
//
// The merge height recorded on each Merge is the linkage-criterion value at
// merge time. It orders the dendrogram but is NOT the branch length of the
// final tree; see the tree package for the mean-distance annotation.
//
// Complexity: O(N² log N) time (heap of O(N²) candidate pairs with lazy
// invalidation), O(N²) memory.
package linkage
