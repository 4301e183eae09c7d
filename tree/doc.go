// Package tree assembles a merge history into a rooted binary tree whose
// internal nodes are annotated with mean original pairwise distances.
//
// The annotation is the deliberate twist of this pipeline: each internal
// node carries the arithmetic mean of the *original* matrix distances over
// every pair of leaves beneath it, not the linkage height at which the merge
// happened. Because the unit is the same for every linkage criterion, trees
// produced under different criteria can be compared side by side.
//
// The mean is exact and incremental. Per cluster the builder keeps a running
// sum of within-cluster pair distances and the pair count; on a merge,
//
//	sum(A∪B)   = sum(A) + sum(B) + Σ d[i][j]  (i∈A, j∈B)
//	count(A∪B) = count(A) + count(B) + |A|·|B|
//
// so the cross terms are each touched exactly once and the whole annotation
// costs O(N²) total — no O(N³) recomputation.
//
// Shape guarantees: exactly N leaves and N−1 internal nodes, every label
// appearing once; children ordered by smallest subtended leaf index, so the
// same history always yields the same tree. Nodes are immutable after Build.
package tree
