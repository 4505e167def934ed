package sexp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAtom_SetString_PreservesQuoting tests that rewriting a quoted
// value keeps it quoted and touches no other byte
func TestAtom_SetString_PreservesQuoting(t *testing.T) {
	input := "(property \"Value\" \"100nF\"\n\t(at 1.27 2.54 0)\n)"

	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	list := doc.Nodes[0].(*List)
	atom := list.Children[2].(*Atom)
	atom.SetString("C1525")

	want := strings.Replace(input, `"100nF"`, `"C1525"`, 1)
	assert.Equal(t, want, string(doc.Bytes()))
	assert.Equal(t, "C1525", atom.Value())
}

// TestAtom_SetString_LocalizedMutation tests that bytes outside the
// rewritten token are identical to the original serialization
func TestAtom_SetString_LocalizedMutation(t *testing.T) {
	doc, err := Parse([]byte(kicadFragment))
	require.NoError(t, err)

	// Find the Datasheet value atom (the empty string).
	var target *Atom
	for _, n := range doc.Walk() {
		l, ok := n.(*List)
		if !ok || l.Tag() != "property" {
			continue
		}
		if name, ok := l.Children[1].(*Atom); ok && name.Value() == "Datasheet" {
			target = l.Children[2].(*Atom)
		}
	}
	require.NotNil(t, target)

	target.SetString("https://example.com/c1525.pdf")

	got := string(doc.Bytes())
	want := strings.Replace(kicadFragment, `"Datasheet" ""`, `"Datasheet" "https://example.com/c1525.pdf"`, 1)
	assert.Equal(t, want, got)
}

// TestAtom_SetString_EscapesSpecialCharacters tests quoting of values
// that contain quotes and backslashes
func TestAtom_SetString_EscapesSpecialCharacters(t *testing.T) {
	atom := NewString("plain")
	atom.SetString(`10k "NPO" C:\parts`)

	assert.Equal(t, `"10k \"NPO\" C:\\parts"`, atom.Text)
	assert.Equal(t, `10k "NPO" C:\parts`, atom.Value())
}

// TestAtom_SetString_BareAtoms tests rewrite behaviour for unquoted
// tokens
func TestAtom_SetString_BareAtoms(t *testing.T) {
	t.Run("bare stays bare", func(t *testing.T) {
		atom := NewSymbol("hide")
		atom.SetString("show")
		assert.Equal(t, "show", atom.Text)
		assert.Equal(t, AtomSymbol, atom.Kind)
	})

	t.Run("bare reclassifies to number", func(t *testing.T) {
		atom := NewSymbol("hide")
		atom.SetString("1.27")
		assert.Equal(t, "1.27", atom.Text)
		assert.Equal(t, AtomNumber, atom.Kind)
	})

	t.Run("bare gains quotes when value needs them", func(t *testing.T) {
		atom := NewSymbol("hide")
		atom.SetString("two words")
		assert.Equal(t, `"two words"`, atom.Text)
		assert.Equal(t, AtomString, atom.Kind)
	})

	t.Run("empty value is quoted", func(t *testing.T) {
		atom := NewSymbol("hide")
		atom.SetString("")
		assert.Equal(t, `""`, atom.Text)
	})
}

// TestAtom_Value_DecodesEscapes tests escape decoding on access
func TestAtom_Value_DecodesEscapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", `"C1"`, "C1"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"unknown escape kept", `"a\qb"`, "aqb"},
		{"empty", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atom := &Atom{Kind: AtomString, Text: tt.text}
			assert.Equal(t, tt.want, atom.Value())
		})
	}
}

// TestList_Tag tests head symbol extraction
func TestList_Tag(t *testing.T) {
	doc, err := Parse([]byte(`(symbol (lib_id "Device:C") ("quoted" 1) ())`))
	require.NoError(t, err)

	outer := doc.Nodes[0].(*List)
	assert.Equal(t, "symbol", outer.Tag())

	inner := outer.Children[1].(*List)
	assert.Equal(t, "lib_id", inner.Tag())

	stringHead := outer.Children[2].(*List)
	assert.Equal(t, "", stringHead.Tag())

	empty := outer.Children[3].(*List)
	assert.Equal(t, "", empty.Tag())
}

// TestList_InsertChild tests splicing at several positions
func TestList_InsertChild(t *testing.T) {
	doc, err := Parse([]byte("(a b c)"))
	require.NoError(t, err)
	list := doc.Nodes[0].(*List)

	mid := NewSymbol("x")
	mid.Pre = " "
	list.InsertChild(2, mid)
	assert.Equal(t, "(a b x c)", string(doc.Bytes()))

	head := NewSymbol("h")
	list.InsertChild(0, head)
	tail := NewSymbol("t")
	tail.Pre = " "
	list.InsertChild(99, tail)
	assert.Equal(t, "(ha b x c t)", string(doc.Bytes()))
	assert.Equal(t, "h", list.Tag())
}

// TestDocument_At tests path resolution
func TestDocument_At(t *testing.T) {
	doc, err := Parse([]byte(`(a (b "x") c) (d)`))
	require.NoError(t, err)

	assert.Same(t, doc.Nodes[0], doc.At(Path{0}))
	assert.Same(t, doc.Nodes[1], doc.At(Path{1}))

	outer := doc.Nodes[0].(*List)
	assert.Same(t, outer.Children[1], doc.At(Path{0, 1}))

	inner := outer.Children[1].(*List)
	assert.Same(t, inner.Children[1], doc.At(Path{0, 1, 1}))

	atom, ok := doc.At(Path{0, 1, 1}).(*Atom)
	require.True(t, ok)
	assert.Equal(t, "x", atom.Value())
}

// TestDocument_At_InvalidPaths tests that bad paths resolve to nil
func TestDocument_At_InvalidPaths(t *testing.T) {
	doc, err := Parse([]byte(`(a (b) c)`))
	require.NoError(t, err)

	tests := []struct {
		name string
		path Path
	}{
		{"empty", Path{}},
		{"negative root", Path{-1}},
		{"root out of range", Path{5}},
		{"child out of range", Path{0, 9}},
		{"descend through atom", Path{0, 0, 0}},
		{"negative child", Path{0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, doc.At(tt.path))
		})
	}
}

// TestPath_Child tests that extending a path never aliases its parent
func TestPath_Child(t *testing.T) {
	base := Path{0, 1}
	a := base.Child(2)
	b := base.Child(3)

	assert.Equal(t, Path{0, 1, 2}, a)
	assert.Equal(t, Path{0, 1, 3}, b)
	assert.Equal(t, Path{0, 1}, base)
}

// TestQuote tests string token encoding
func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "C1525", `"C1525"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}
