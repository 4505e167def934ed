package domain

// Candidate is one parts-catalog search result. Candidates are
// immutable once returned: the engine selects them, it never edits
// them, and their order is exactly the order the catalog returned.
type Candidate struct {
	// ID is the supplier part number, e.g. "C1525".
	ID string

	// MfrPart is the manufacturer part number.
	MfrPart string

	// Manufacturer is the brand name.
	Manufacturer string

	// Description is the catalog description line.
	Description string

	// Package is the physical package name, e.g. "0402".
	Package string

	// Stock is the reported stock count, 0 when unknown.
	Stock int

	// Price is the unit price at the lowest quantity break, 0 when
	// unknown.
	Price float64

	// URL is the supplier product page.
	URL string
}
