// Package matrix provides the validated distance-matrix input model for
// hierarchical clustering.
//
// The single exported type, Distance, couples an ordered set of unique
// entity labels with an N×N matrix of pairwise distances. Construction
// validates everything the downstream pipeline relies on:
//
//   - square shape, one row per label
//   - unique labels
//   - finite, non-negative entries
//   - zero diagonal (within epsilon)
//   - symmetry (within epsilon)
//   - at least two entities
//
// Every violation is reported through the ErrInvalidInput sentinel chain,
// so callers can match the whole family with errors.Is(err, ErrInvalidInput)
// or a specific cause such as ErrAsymmetry.
//
// A Distance is immutable once constructed: accessors return copies, and
// the stored upper triangle is mirrored onto the lower one so that
// At(i,j) == At(j,i) holds exactly, bit for bit.
//
// Complexity: construction O(N²) time and memory; At is O(1).
package matrix
