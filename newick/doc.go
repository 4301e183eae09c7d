// Package newick renders annotated trees to Newick text and parses that
// text back.
//
// Writer dialect:
//
//   - depth-first, children before parent: (A:3,B:3):… with a final ';'
//   - every non-root edge carries an explicit branch length
//   - an internal node's length is its own mean-distance annotation; a leaf
//     inherits the mean of its parent (the edge leads out of that cluster)
//   - the root carries no trailing length, per Newick convention
//   - branch lengths are fixed-point with 6 decimals, never scientific
//     notation ('e' floats are rejected inconsistently by common parsers);
//     6 decimals keep round-trips within 1e-6
//   - labels containing whitespace or any of ( ) [ ] ' : ; , are wrapped in
//     single quotes with internal quotes doubled ('' per the standard)
//
// Labels that cannot round-trip unambiguously (empty, or containing control
// characters) fail with ErrInvalidLabel.
//
// The parser accepts the writer's dialect — quoted and bare labels, optional
// branch lengths, arbitrary arity — and is used to verify round-trips.
package newick
