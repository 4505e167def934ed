package sexp

import "iter"

// Walk returns a lazy preorder traversal over every node in the
// document, paired with its path from the root. Stopping early is
// cheap: no more of the tree is visited than the consumer asks for.
func (d *Document) Walk() iter.Seq2[Path, Node] {
	return func(yield func(Path, Node) bool) {
		for i, n := range d.Nodes {
			if !walk(Path{i}, n, yield) {
				return
			}
		}
	}
}

// Lists narrows Walk to list nodes. This is the traversal the symbol
// locator runs over schematic documents.
func (d *Document) Lists() iter.Seq2[Path, *List] {
	return func(yield func(Path, *List) bool) {
		for p, n := range d.Walk() {
			if l, ok := n.(*List); ok && !yield(p, l) {
				return
			}
		}
	}
}

func walk(p Path, n Node, yield func(Path, Node) bool) bool {
	if !yield(p, n) {
		return false
	}
	l, ok := n.(*List)
	if !ok {
		return true
	}
	for i, c := range l.Children {
		if !walk(append(p.Clone(), i), c, yield) {
			return false
		}
	}
	return true
}
