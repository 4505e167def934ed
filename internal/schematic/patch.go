package schematic

import (
	"fmt"
	"strings"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/sexp"
)

// Apply writes a decision's assignment into the document. Matched and
// ManualOverride set the identifier and URL properties as one atomic
// pair: both targets are resolved and validated before either byte
// changes, so a failure never leaves one field written and the other
// not. Skipped and LeftUnchanged decisions change nothing. Applying
// the same decision twice leaves the same bytes as applying it once.
func (s *Schematic) Apply(comp *domain.SymbolComponent, d domain.ResolutionDecision, missing domain.MissingPropertyPolicy) error {
	id, url, ok := d.Assignment()
	if !ok {
		return nil
	}

	targets := []struct {
		name  string
		value string
	}{
		{s.schema.IDProperty, id},
		{s.schema.URLProperty, url},
	}

	atoms := make([]*sexp.Atom, len(targets))
	var symbol *sexp.List
	for i, t := range targets {
		p, ok := comp.Properties[t.name]
		if !ok {
			if missing == domain.MissingPropertySkip {
				return &domain.MissingFieldError{Reference: comp.Reference, Property: t.name}
			}
			if symbol == nil {
				symbol, _ = s.doc.At(sexp.Path(comp.Node)).(*sexp.List)
				if symbol == nil {
					return fmt.Errorf("component %s: symbol node is not addressable", comp.Reference)
				}
			}
			continue
		}
		atom, ok := s.doc.At(sexp.Path(p)).(*sexp.Atom)
		if !ok {
			return fmt.Errorf("component %s: property %q: stale document path", comp.Reference, t.name)
		}
		atoms[i] = atom
	}

	for i, t := range targets {
		if atoms[i] != nil {
			atoms[i].SetString(t.value)
			continue
		}
		comp.Properties[t.name] = s.synthesize(comp, symbol, t.name, t.value)
	}

	comp.SupplierID = id
	comp.SupplierURL = url
	return nil
}

// synthesize inserts a hidden property shaped exactly like the
// schematic editor's own output:
//
//	(property "<name>" "<value>" (at <x> <y> <angle>)
//		(effects (font (size 1.27 1.27)) hide)
//	)
//
// The node goes in before the first pin (or instances) child, with
// that child's line indentation, and the position is copied from the
// Reference property so the editor anchors the new field at the
// symbol.
func (s *Schematic) synthesize(comp *domain.SymbolComponent, symbol *sexp.List, name, value string) domain.NodePath {
	idx, indent := insertionPoint(symbol)

	at := sexp.NewList(sexp.NewSymbol("at"))
	at.Pre = " "
	for _, coord := range referenceCoords(symbol) {
		atom := sexp.NewSymbol(coord)
		atom.Pre = " "
		at.Children = append(at.Children, atom)
	}

	sizeX := sexp.NewSymbol("1.27")
	sizeX.Pre = " "
	sizeY := sexp.NewSymbol("1.27")
	sizeY.Pre = " "
	size := sexp.NewList(sexp.NewSymbol("size"), sizeX, sizeY)
	size.Pre = " "
	font := sexp.NewList(sexp.NewSymbol("font"), size)
	font.Pre = " "
	hide := sexp.NewSymbol("hide")
	hide.Pre = " "
	effects := sexp.NewList(sexp.NewSymbol("effects"), font, hide)
	effects.Pre = "\n" + indent + "\t"

	nameAtom := sexp.NewString(name)
	nameAtom.Pre = " "
	valueAtom := sexp.NewString(value)
	valueAtom.Pre = " "

	prop := sexp.NewList(sexp.NewSymbol("property"), nameAtom, valueAtom, at, effects)
	prop.Pre = "\n" + indent
	prop.Close = "\n" + indent

	symbol.InsertChild(idx, prop)
	return domain.NodePath(append(sexp.Path(comp.Node).Clone(), idx, 2))
}

// insertionPoint finds the child index a new property goes in at,
// before the first pin or instances child, and the line indentation
// to copy for it.
func insertionPoint(symbol *sexp.List) (int, string) {
	for i, child := range symbol.Children {
		l, ok := child.(*sexp.List)
		if !ok {
			continue
		}
		if tag := l.Tag(); tag == "pin" || tag == "instances" {
			return i, lineIndent(l.Pre)
		}
	}
	return len(symbol.Children), "\t\t"
}

// lineIndent returns the indentation after the last newline of a gap
// run.
func lineIndent(gap string) string {
	if i := strings.LastIndexByte(gap, '\n'); i >= 0 {
		return gap[i+1:]
	}
	return "\t\t"
}

// referenceCoords copies the (at ...) coordinate spellings of the
// Reference property. Falls back to the origin when the symbol has no
// positioned Reference.
func referenceCoords(symbol *sexp.List) []string {
	for _, child := range symbol.Children {
		prop, ok := child.(*sexp.List)
		if !ok || prop.Tag() != tagProperty || len(prop.Children) < 3 {
			continue
		}
		if name, ok := prop.Children[1].(*sexp.Atom); !ok || name.Value() != domain.PropReference {
			continue
		}
		for _, pc := range prop.Children {
			atList, ok := pc.(*sexp.List)
			if !ok || atList.Tag() != "at" {
				continue
			}
			var coords []string
			for _, c := range atList.Children[1:] {
				if a, ok := c.(*sexp.Atom); ok {
					coords = append(coords, a.Text)
				}
			}
			if len(coords) > 0 {
				return coords
			}
		}
	}
	return []string{"0", "0", "0"}
}
