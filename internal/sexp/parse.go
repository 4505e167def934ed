package sexp

import "fmt"

// SyntaxError reports malformed input at a specific position. Parsing
// never produces a partial document: the first error aborts the whole
// parse.
type SyntaxError struct {
	// Offset is the byte offset of the failure.
	Offset int

	// Line is the 1-based line number.
	Line int

	// Col is the 1-based byte column within the line.
	Col int

	// Msg describes the failure.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Parse reads an s-expression document, recording every gap byte so
// that Bytes reproduces the input exactly. Errors are *SyntaxError.
func Parse(src []byte) (*Document, error) {
	p := &parser{src: src}
	doc := &Document{}
	for {
		gap := p.gap()
		if p.eof() {
			doc.Tail = gap
			return doc, nil
		}
		n, err := p.node(gap)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
	}
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// gap consumes whitespace and ;-to-end-of-line comments, returning
// the exact bytes consumed.
func (p *parser) gap() string {
	start := p.pos
	for !p.eof() {
		switch c := p.src[p.pos]; c {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case ';':
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return string(p.src[start:p.pos])
		}
	}
	return string(p.src[start:p.pos])
}

func (p *parser) node(pre string) (Node, error) {
	switch p.src[p.pos] {
	case '(':
		return p.list(pre)
	case ')':
		return nil, p.errorf(p.pos, "unexpected %q", ')')
	case '"':
		return p.str(pre)
	default:
		return p.bare(pre), nil
	}
}

func (p *parser) list(pre string) (Node, error) {
	open := p.pos
	p.pos++ // consume '('
	l := &List{Pre: pre}
	for {
		gap := p.gap()
		if p.eof() {
			return nil, p.errorf(open, "unclosed list")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			l.Close = gap
			return l, nil
		}
		child, err := p.node(gap)
		if err != nil {
			return nil, err
		}
		l.Children = append(l.Children, child)
	}
}

func (p *parser) str(pre string) (Node, error) {
	open := p.pos
	p.pos++ // consume opening quote
	for !p.eof() {
		switch p.src[p.pos] {
		case '\\':
			p.pos++
			if !p.eof() {
				p.pos++
			}
		case '"':
			p.pos++
			return &Atom{Pre: pre, Kind: AtomString, Text: string(p.src[open:p.pos])}, nil
		default:
			p.pos++
		}
	}
	return nil, p.errorf(open, "unterminated string")
}

func (p *parser) bare(pre string) Node {
	start := p.pos
	for !p.eof() && !delim(p.src[p.pos]) {
		p.pos++
	}
	text := string(p.src[start:p.pos])
	return &Atom{Pre: pre, Kind: classify(text), Text: text}
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	line, col := 1, 1
	for _, c := range p.src[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func delim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}
