// Package annotate joins matrix leaf labels to descriptive metadata
// (kinase group, family, plus arbitrary extra columns) for the side table
// written next to the tree.
//
// The mapping is strict by design: matching is case-sensitive and exact,
// and a label without a record fails the whole run with ErrMissingAnnotation
// naming the label. Silent omission would leave downstream coloring and
// visualization inconsistent with the tree, which is worse than failing.
//
// A Source is an ordered collection of Records keyed by label; Map projects
// it onto the matrix label order, so the side table always lists leaves in
// the same order as the input matrix.
package annotate
