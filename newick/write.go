package newick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kintree/kintree/tree"
)

// Precision is the number of fixed decimals written for branch lengths.
// Chosen so parsed values land within 1e-6 of the originals.
const Precision = 6

// unquotedBanned are the characters that force a label into quoted form,
// in addition to any whitespace.
const unquotedBanned = "()[]':;,"

var (
	// ErrInvalidLabel - the label cannot be serialized unambiguously.
	ErrInvalidLabel = errors.New("newick: label cannot be serialized")

	// ErrNilTree - Write was handed a nil root.
	ErrNilTree = errors.New("newick: nil tree")
)

// Write renders the tree rooted at root as a single Newick string,
// terminated by ';'. See the package documentation for the exact dialect.
//
// Errors: ErrNilTree for a nil root, ErrInvalidLabel (naming the label) for
// a leaf that cannot round-trip.
//
// Complexity: O(N) time and output size.
func Write(root *tree.Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("Write: %w", ErrNilTree)
	}

	var sb strings.Builder
	if err := render(&sb, root, 0, true); err != nil {
		return "", err
	}
	sb.WriteByte(';')
	return sb.String(), nil
}

// render emits one node. parentMean is the annotation of the node's parent,
// which supplies the branch length of leaf edges; atRoot suppresses the
// trailing length of the top node.
func render(sb *strings.Builder, n *tree.Node, parentMean float64, atRoot bool) error {
	if n.IsLeaf() {
		escaped, err := escapeLabel(n.Label)
		if err != nil {
			return err
		}
		sb.WriteString(escaped)
		sb.WriteByte(':')
		sb.WriteString(formatLength(parentMean))
		return nil
	}

	sb.WriteByte('(')
	if err := render(sb, n.Left, n.Mean, false); err != nil {
		return err
	}
	sb.WriteByte(',')
	if err := render(sb, n.Right, n.Mean, false); err != nil {
		return err
	}
	sb.WriteByte(')')
	if !atRoot {
		sb.WriteByte(':')
		sb.WriteString(formatLength(n.Mean))
	}
	return nil
}

// formatLength renders a branch length as fixed-point decimal text.
// strconv with the 'f' verb never produces scientific notation.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// escapeLabel returns the on-wire form of a leaf label: bare when safe,
// single-quoted with doubled internal quotes otherwise.
func escapeLabel(label string) (string, error) {
	if label == "" {
		return "", fmt.Errorf("escapeLabel: empty label: %w", ErrInvalidLabel)
	}
	needQuote := false
	for _, r := range label {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("escapeLabel: %q contains a control character: %w", label, ErrInvalidLabel)
		}
		if unicode.IsSpace(r) || strings.ContainsRune(unquotedBanned, r) {
			needQuote = true
		}
	}
	if !needQuote {
		return label, nil
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'", nil
}
