package newick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tree is the parsed form of a Newick node: a label (possibly empty), an
// optional branch length, and zero or more children. It is deliberately
// looser than tree.Node — any well-formed Newick input parses, not only the
// strict binary dialect this package writes.
type Tree struct {
	Label     string
	Length    float64
	HasLength bool
	Children  []*Tree
}

// Leaves returns the leaf labels of the parsed tree in reading order.
func (t *Tree) Leaves() []string {
	if len(t.Children) == 0 {
		return []string{t.Label}
	}
	var out []string
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// ErrParse - the input is not well-formed Newick text.
var ErrParse = errors.New("newick: parse error")

// Parse reads a single Newick tree from s. The whole input must be consumed
// up to the terminating ';' (trailing whitespace is fine).
//
// Complexity: O(len(s)).
func Parse(s string) (*Tree, error) {
	p := &parser{s: s}
	p.skipSpace()
	t, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.accept(';') {
		return nil, p.errf("missing terminating ';'")
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, p.errf("trailing data after ';'")
	}
	return t, nil
}

// parser is a minimal recursive-descent cursor over the input string.
type parser struct {
	s   string
	pos int
}

// bareDelims end an unquoted label or a number.
const bareDelims = "()[]':;,"

func (p *parser) errf(format string, v ...interface{}) error {
	return fmt.Errorf("Parse: offset %d: %s: %w", p.pos, fmt.Sprintf(format, v...), ErrParse)
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.s[p.pos:])
	return r, true
}

func (p *parser) accept(want rune) bool {
	if r, ok := p.peek(); ok && r == want {
		p.pos += utf8.RuneLen(r)
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for {
		r, ok := p.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		p.pos += utf8.RuneLen(r)
	}
}

// subtree parses either a leaf (label[:length]) or an internal node
// ((child,child,...)[label][:length]).
func (p *parser) subtree() (*Tree, error) {
	t := &Tree{}
	p.skipSpace()

	if p.accept('(') {
		for {
			child, err := p.subtree()
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, child)
			p.skipSpace()
			if p.accept(',') {
				continue
			}
			if p.accept(')') {
				break
			}
			return nil, p.errf("expected ',' or ')'")
		}
	}

	label, err := p.label()
	if err != nil {
		return nil, err
	}
	t.Label = label

	p.skipSpace()
	if p.accept(':') {
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		t.Length, t.HasLength = v, true
	}
	return t, nil
}

// label parses an optional quoted or bare label at the cursor.
func (p *parser) label() (string, error) {
	p.skipSpace()
	if p.accept('\'') {
		return p.quoted()
	}

	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || unicode.IsSpace(r) || strings.ContainsRune(bareDelims, r) {
			break
		}
		p.pos += utf8.RuneLen(r)
	}
	return p.s[start:p.pos], nil
}

// quoted consumes a single-quoted label body; the opening quote is already
// consumed. A doubled quote ('') is an escaped literal quote.
func (p *parser) quoted() (string, error) {
	var sb strings.Builder
	for {
		r, ok := p.peek()
		if !ok {
			return "", p.errf("unterminated quoted label")
		}
		p.pos += utf8.RuneLen(r)
		if r != '\'' {
			sb.WriteRune(r)
			continue
		}
		if p.accept('\'') {
			sb.WriteByte('\'') // escaped quote
			continue
		}
		return sb.String(), nil
	}
}

// number parses a plain decimal branch length (the writer never emits
// scientific notation, and the parser does not accept it either).
func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || !(r == '+' || r == '-' || r == '.' || (r >= '0' && r <= '9')) {
			break
		}
		p.pos += utf8.RuneLen(r)
	}
	text := p.s[start:p.pos]
	if text == "" {
		return 0, p.errf("expected a branch length")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errf("bad branch length %q", text)
	}
	return v, nil
}
