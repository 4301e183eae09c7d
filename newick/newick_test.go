package newick_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintree/kintree/linkage"
	"github.com/kintree/kintree/matrix"
	"github.com/kintree/kintree/newick"
	"github.com/kintree/kintree/tree"
)

// leafNode and innerNode build hand-assembled trees for writer tests.
func leafNode(label string, index int) *tree.Node {
	return &tree.Node{Label: label, Index: index}
}

func innerNode(left, right *tree.Node, mean float64) *tree.Node {
	return &tree.Node{Index: -1, Left: left, Right: right, Mean: mean}
}

// TestWrite_Shape pins the exact output of a hand-assembled tree:
// pairs annotated 1.0 and 2.0 under a root annotated 3.0. Leaf edges carry
// the parent's mean; the root has no trailing length.
func TestWrite_Shape(t *testing.T) {
	root := innerNode(
		innerNode(leafNode("A", 0), leafNode("B", 1), 1),
		innerNode(leafNode("C", 2), leafNode("D", 3), 2),
		3,
	)

	s, err := newick.Write(root)
	require.NoError(t, err)
	assert.Equal(t, "((A:1.000000,B:1.000000):1.000000,(C:2.000000,D:2.000000):2.000000);", s)
}

// TestWrite_QuotedLabel ensures labels with spaces, commas or quotes are
// quoted per Newick rules and parse back to the identical string.
func TestWrite_QuotedLabel(t *testing.T) {
	root := innerNode(leafNode("My Kinase, 2", 0), leafNode("O'Leary:1", 1), 0.5)

	s, err := newick.Write(root)
	require.NoError(t, err)
	assert.Contains(t, s, "'My Kinase, 2':0.500000")
	assert.Contains(t, s, "'O''Leary:1':0.500000")

	parsed, err := newick.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"My Kinase, 2", "O'Leary:1"}, parsed.Leaves())
}

// TestWrite_InvalidLabel covers empty and control-character labels.
func TestWrite_InvalidLabel(t *testing.T) {
	root := innerNode(leafNode("", 0), leafNode("B", 1), 1)
	_, err := newick.Write(root)
	assert.ErrorIs(t, err, newick.ErrInvalidLabel, "empty label")

	root = innerNode(leafNode("bad\nlabel", 0), leafNode("B", 1), 1)
	_, err = newick.Write(root)
	assert.ErrorIs(t, err, newick.ErrInvalidLabel, "control character")
	assert.ErrorContains(t, err, "bad\\nlabel", "error must name the label")
}

// TestWrite_NilTree ensures the nil sentinel fires.
func TestWrite_NilTree(t *testing.T) {
	_, err := newick.Write(nil)
	assert.ErrorIs(t, err, newick.ErrNilTree)
}

// TestWrite_NoScientificNotation feeds a mean small enough that naive %g
// formatting would produce an exponent.
func TestWrite_NoScientificNotation(t *testing.T) {
	root := innerNode(leafNode("A", 0), leafNode("B", 1), 1e-9)
	s, err := newick.Write(root)
	require.NoError(t, err)
	assert.NotContains(t, s, "e", "branch lengths must be fixed-point")
	assert.NotContains(t, s, "E")
	assert.Contains(t, s, "A:0.000000", "1e-9 rounds to zero at 6 decimals")
}

// TestRoundTrip_Pipeline serializes a clustered tree and parses it back,
// comparing leaf sets and branch lengths within 1e-6.
func TestRoundTrip_Pipeline(t *testing.T) {
	d, err := matrix.New(
		[]string{"AKT1", "BRAF", "EGFR", "My Kinase, 2"},
		[][]float64{
			{0, 0.31, 0.74, 0.68},
			{0.31, 0, 0.59, 0.83},
			{0.74, 0.59, 0, 0.12},
			{0.68, 0.83, 0.12, 0},
		},
	)
	require.NoError(t, err)

	history, err := linkage.Run(d, linkage.Ward)
	require.NoError(t, err)
	root, err := tree.Build(d, history)
	require.NoError(t, err)

	s, err := newick.Write(root)
	require.NoError(t, err)
	parsed, err := newick.Parse(s)
	require.NoError(t, err)

	// Same leaf set.
	got := parsed.Leaves()
	sort.Strings(got)
	assert.Equal(t, []string{"AKT1", "BRAF", "EGFR", "My Kinase, 2"}, got)

	// Root carries no length, every other node does, and internal lengths
	// reproduce the mean annotations within tolerance.
	assert.False(t, parsed.HasLength, "root must have no trailing length")
	require.Len(t, parsed.Children, 2)

	var checkLengths func(p *newick.Tree)
	checkLengths = func(p *newick.Tree) {
		assert.True(t, p.HasLength, "non-root node %q must carry a length", p.Label)
		for _, c := range p.Children {
			checkLengths(c)
		}
	}
	for _, c := range parsed.Children {
		checkLengths(c)
	}

	var findMean func(n *tree.Node, p *newick.Tree)
	findMean = func(n *tree.Node, p *newick.Tree) {
		if n.IsLeaf() {
			assert.Equal(t, n.Label, p.Label)
			return
		}
		require.Len(t, p.Children, 2)
		if p.HasLength {
			assert.InDelta(t, n.Mean, p.Length, 1e-6)
		}
		findMean(n.Left, p.Children[0])
		findMean(n.Right, p.Children[1])
	}
	findMean(root, parsed)
}

// TestParse_Errors covers malformed inputs.
func TestParse_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"missing terminal":  "(A:1,B:1)",
		"unbalanced":        "((A:1,B:1;",
		"trailing data":     "(A:1,B:1); junk",
		"unterminated text": "('A:1,B:1);",
		"missing length":    "(A:,B:1);",
		"exponent rejected": "(A:1e-3,B:1);",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newick.Parse(input)
			assert.ErrorIs(t, err, newick.ErrParse)
		})
	}
}

// TestParse_Whitespace tolerates whitespace between tokens.
func TestParse_Whitespace(t *testing.T) {
	parsed, err := newick.Parse(" ( A:1.5 , B:2.5 ) ;\n")
	require.NoError(t, err)
	require.Len(t, parsed.Children, 2)
	assert.Equal(t, "A", parsed.Children[0].Label)
	assert.InDelta(t, 2.5, parsed.Children[1].Length, 1e-12)
}

// TestEscaping_Table spells out the quoting rule on the wire.
func TestEscaping_Table(t *testing.T) {
	cases := []struct {
		label string
		wire  string
	}{
		{"EGFR", "EGFR"},
		{"My Kinase, 2", "'My Kinase, 2'"},
		{"a:b", "'a:b'"},
		{"(paren)", "'(paren)'"},
		{"quote'd", "'quote''d'"},
	}
	for _, tc := range cases {
		root := innerNode(leafNode(tc.label, 0), leafNode("Z", 1), 1)
		s, err := newick.Write(root)
		require.NoError(t, err, tc.label)
		assert.True(t, strings.HasPrefix(s, "("+tc.wire+":"), "label %q: got %s", tc.label, s)

		parsed, err := newick.Parse(s)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.label, parsed.Children[0].Label, "round-trip of %q", tc.label)
	}
}
