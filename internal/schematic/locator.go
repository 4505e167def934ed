package schematic

import (
	"strings"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/sexp"
)

const (
	tagSymbol   = "symbol"
	tagLibID    = "lib_id"
	tagProperty = "property"
)

// Components extracts the symbol instances in file order. The order
// is stable across runs of the same input, which interactive sessions
// rely on.
//
// A symbol instance is a list headed by the symbol tag that carries a
// lib_id child; library definitions under lib_symbols have no lib_id
// and are never matched. Power symbols and reference designators
// starting with "#" are excluded.
func (s *Schematic) Components() []*domain.SymbolComponent {
	var comps []*domain.SymbolComponent
	for path, list := range s.doc.Lists() {
		if list.Tag() != tagSymbol {
			continue
		}
		if comp := s.extract(path, list); comp != nil {
			comps = append(comps, comp)
		}
	}
	return comps
}

func (s *Schematic) extract(path sexp.Path, list *sexp.List) *domain.SymbolComponent {
	libID, ok := libIDOf(list)
	if !ok {
		return nil
	}
	if strings.HasPrefix(libID, "power:") || strings.Contains(libID, ":PWR_") {
		return nil
	}

	// Duplicate property names collapse to the last declared one.
	values := map[string]string{}
	paths := map[string]domain.NodePath{}
	for i, child := range list.Children {
		prop, ok := child.(*sexp.List)
		if !ok || prop.Tag() != tagProperty || len(prop.Children) < 3 {
			continue
		}
		name, ok := prop.Children[1].(*sexp.Atom)
		if !ok {
			continue
		}
		value, ok := prop.Children[2].(*sexp.Atom)
		if !ok {
			continue
		}
		values[name.Value()] = value.Value()
		paths[name.Value()] = domain.NodePath(path.Child(i).Child(2))
	}

	ref := values[domain.PropReference]
	if ref == "" || strings.HasPrefix(ref, "#") {
		return nil
	}

	_, hasValue := values[domain.PropValue]
	_, hasFootprint := values[domain.PropFootprint]

	return &domain.SymbolComponent{
		Reference:   ref,
		Value:       values[domain.PropValue],
		Footprint:   values[domain.PropFootprint],
		LibID:       libID,
		SupplierID:  values[s.schema.IDProperty],
		SupplierURL: values[s.schema.URLProperty],
		Incomplete:  !hasValue || !hasFootprint,
		Node:        domain.NodePath(path.Clone()),
		Properties:  paths,
	}
}

func libIDOf(symbol *sexp.List) (string, bool) {
	for _, child := range symbol.Children {
		l, ok := child.(*sexp.List)
		if !ok || l.Tag() != tagLibID || len(l.Children) < 2 {
			continue
		}
		if id, ok := l.Children[1].(*sexp.Atom); ok {
			return id.Value(), true
		}
	}
	return "", false
}
