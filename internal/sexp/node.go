package sexp

import (
	"bytes"
	"strconv"
	"strings"
)

// AtomKind classifies an atom's lexical shape.
type AtomKind int

const (
	// AtomSymbol is a bare identifier token.
	AtomSymbol AtomKind = iota

	// AtomString is a double-quoted string token.
	AtomString

	// AtomNumber is a bare numeric token.
	AtomNumber
)

// Node is one element of the document tree, either an *Atom or a
// *List. Every node carries the exact gap bytes (whitespace and
// comments) that preceded it in the source.
type Node interface {
	appendTo(buf *bytes.Buffer)
}

// Atom is a literal token.
type Atom struct {
	// Pre is the gap run preceding the token.
	Pre string

	// Kind classifies the token.
	Kind AtomKind

	// Text is the exact source spelling. For string atoms this
	// includes the surrounding quotes and any escapes.
	Text string
}

// Value returns the decoded token value: the unescaped content for
// string atoms, the raw spelling for everything else.
func (a *Atom) Value() string {
	if a.Kind == AtomString {
		return unquote(a.Text)
	}
	return a.Text
}

// SetString replaces the atom's value. String atoms stay quoted; bare
// atoms stay bare unless the new value needs quoting. The surrounding
// gap bytes are untouched, so the rewrite is local to this token.
func (a *Atom) SetString(v string) {
	if a.Kind == AtomString || !bareable(v) {
		a.Kind = AtomString
		a.Text = Quote(v)
		return
	}
	a.Kind = classify(v)
	a.Text = v
}

func (a *Atom) appendTo(buf *bytes.Buffer) {
	buf.WriteString(a.Pre)
	buf.WriteString(a.Text)
}

// List is a parenthesized group of nodes.
type List struct {
	// Pre is the gap run preceding the opening parenthesis.
	Pre string

	// Children are the group's nodes in source order.
	Children []Node

	// Close is the gap run between the last child and the closing
	// parenthesis.
	Close string
}

// Tag returns the list's head symbol, or "" when the list is empty or
// headed by something other than a bare atom.
func (l *List) Tag() string {
	if len(l.Children) == 0 {
		return ""
	}
	a, ok := l.Children[0].(*Atom)
	if !ok || a.Kind == AtomString {
		return ""
	}
	return a.Text
}

// InsertChild splices n in as child i, shifting later children right.
// Paths recorded before the insert that pass through this list at
// position i or later no longer address the same nodes.
func (l *List) InsertChild(i int, n Node) {
	if i < 0 {
		i = 0
	}
	if i > len(l.Children) {
		i = len(l.Children)
	}
	l.Children = append(l.Children, nil)
	copy(l.Children[i+1:], l.Children[i:])
	l.Children[i] = n
}

func (l *List) appendTo(buf *bytes.Buffer) {
	buf.WriteString(l.Pre)
	buf.WriteByte('(')
	for _, c := range l.Children {
		c.appendTo(buf)
	}
	buf.WriteString(l.Close)
	buf.WriteByte(')')
}

// Document is a parsed file: the top-level nodes plus the trailing
// bytes after the last node. The zero value is an empty document.
type Document struct {
	// Nodes are the top-level nodes in source order.
	Nodes []Node

	// Tail is the gap run after the last node.
	Tail string
}

// Bytes serializes the document. A document whose atoms were never
// mutated serializes byte-identically to the text it was parsed from.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, n := range d.Nodes {
		n.appendTo(&buf)
	}
	buf.WriteString(d.Tail)
	return buf.Bytes()
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Path addresses a node as a chain of child indexes from the document
// root: the first element selects a top-level node, each further
// element a child of the list above it.
type Path []int

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Child returns a clone of the path extended by one child index.
func (p Path) Child(i int) Path {
	return append(p.Clone(), i)
}

// At resolves a path to its node, or nil when the path does not
// address a node in this document.
func (d *Document) At(p Path) Node {
	if len(p) == 0 || p[0] < 0 || p[0] >= len(d.Nodes) {
		return nil
	}
	n := d.Nodes[p[0]]
	for _, i := range p[1:] {
		l, ok := n.(*List)
		if !ok || i < 0 || i >= len(l.Children) {
			return nil
		}
		n = l.Children[i]
	}
	return n
}

// NewSymbol returns a bare atom with the given spelling and no
// preceding gap.
func NewSymbol(text string) *Atom {
	return &Atom{Kind: classify(text), Text: text}
}

// NewString returns a quoted string atom holding v, with no preceding
// gap.
func NewString(v string) *Atom {
	return &Atom{Kind: AtomString, Text: Quote(v)}
}

// NewList returns a list with the given children and no preceding gap.
func NewList(children ...Node) *List {
	return &List{Children: children}
}

// Quote renders v as a double-quoted string token, escaping the
// backslash, the double quote, newlines and tabs.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func unquote(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return text
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

func classify(text string) AtomKind {
	if text == "" {
		return AtomSymbol
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return AtomNumber
	}
	return AtomSymbol
}

func bareable(v string) bool {
	return v != "" && !strings.ContainsAny(v, " \t\r\n()\";")
}
