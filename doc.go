// Package kintree turns a symmetric distance matrix over labeled entities
// (protein kinases, in the original application) into a rooted hierarchical
// tree serialized as Newick text, plus a per-leaf annotation side table.
//
// 🚀 What is kintree?
//
//	A small, deterministic pipeline library that brings together:
//		• Distance matrix: validated, immutable symmetric input (matrix/)
//		• Clustering: agglomerative linkage with five criteria (linkage/)
//		• Tree assembly: merge history → rooted binary tree whose branch
//		  lengths are mean original pairwise distances (tree/)
//		• Serialization: Newick writer + round-trip parser (newick/)
//		• Annotation: leaf label → group/family metadata mapping (annotate/)
//		• Tabular collaborators: CSV matrix & annotation I/O (tabio/)
//
// ✨ Why kintree?
//
//   - Deterministic – same matrix and method always yield byte-identical output
//   - Comparable across methods – branch lengths are mean original distances,
//     not linkage heights, so trees from different criteria share one unit
//   - Fail-fast – sentinel errors, no silent recovery, no partial output
//
// Under the hood, everything is organized into focused subpackages:
//
//	matrix/   — Distance: symmetric matrix with unique ordered labels
//	linkage/  — Method (ward/complete/weighted/average/centroid) + engine
//	tree/     — merge history → annotated rooted binary tree
//	newick/   — Newick text writer and parser
//	annotate/ — leaf label → {group, family, …} mapping
//	tabio/    — CSV collaborators for matrices and annotation tables
//	cmd/      — the kintree command-line front end
//
// Control flow:
//
//	matrix.Distance ──▶ linkage.Run ──▶ tree.Build ──▶ newick.Write
//	        └────────────▶ annotate.Map (side table, independent)
//
//	go get github.com/kintree/kintree
package kintree
