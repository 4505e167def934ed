package domain

import "time"

// BOMLine is one grouped row of a bill of materials. Components
// collapse into a line when they share value, footprint and supplier
// part number.
type BOMLine struct {
	// References lists the designators in the group, in file order.
	References []string

	// Quantity is the number of components in the group.
	Quantity int

	// Value is the shared component value.
	Value string

	// Footprint is the shared footprint.
	Footprint string

	// SupplierID is the shared supplier part number, empty for an
	// unlinked group.
	SupplierID string
}

// BOM is a bill of materials generated from one schematic.
type BOM struct {
	// Schematic is the source file path.
	Schematic string

	// GeneratedAt stamps the export.
	GeneratedAt time.Time

	// Lines are the grouped rows, in first-appearance order.
	Lines []BOMLine
}

// Linked counts the lines that carry a supplier part number.
func (b *BOM) Linked() int {
	n := 0
	for _, line := range b.Lines {
		if line.SupplierID != "" {
			n++
		}
	}
	return n
}
