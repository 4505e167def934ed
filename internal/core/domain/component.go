package domain

import (
	"regexp"
	"strings"
)

// Property names of the schematic schema. Reference, Value and
// Footprint are fixed by the file format; the supplier identifier and
// URL names are defaults the configuration may override.
const (
	PropReference = "Reference"
	PropValue     = "Value"
	PropFootprint = "Footprint"

	// PropSupplierID is the default property holding the supplier
	// part number.
	PropSupplierID = "LCSC"

	// PropSupplierURL is the default property holding the supplier
	// product page.
	PropSupplierURL = "URL"
)

// NodePath addresses a node inside the owning parsed document as a
// chain of child indexes from the document root. It is a reference,
// not a copy: writing through it mutates the one parsed tree the
// component was extracted from.
type NodePath []int

// SymbolComponent is a read view over one symbol instance in a
// schematic, plus the in-document locations of its properties.
type SymbolComponent struct {
	// Reference is the designator, e.g. "C1".
	Reference string

	// Value is the declared value, e.g. "100nF".
	Value string

	// Footprint is the footprint property value, e.g.
	// "Capacitor_SMD:C_0402_1005Metric".
	Footprint string

	// LibID is the symbol's library identifier, e.g. "Device:C".
	LibID string

	// SupplierID is the current supplier part number, "" when the
	// component has not been linked yet.
	SupplierID string

	// SupplierURL is the current supplier product page, "" when unset.
	SupplierURL string

	// Incomplete marks a component missing its Value or Footprint
	// property. The resolution engine skips incomplete components
	// rather than guess a query.
	Incomplete bool

	// Node is the location of the symbol's own list node.
	Node NodePath

	// Properties maps property names to the location of each
	// property's value inside the owning document. Duplicate property
	// names collapse to the last declared occurrence.
	Properties map[string]NodePath
}

// HasProperty reports whether the symbol declares the named property.
func (c *SymbolComponent) HasProperty(name string) bool {
	_, ok := c.Properties[name]
	return ok
}

var supplierIDPattern = regexp.MustCompile(`^C[0-9]+$`)

// NormalizeSupplierID canonicalises a hand-entered supplier part
// number: surrounding whitespace is dropped and the prefix upper-cased.
// The second return is false when the result is not a plausible part
// number (the letter C followed by digits).
func NormalizeSupplierID(s string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(s))
	return id, supplierIDPattern.MatchString(id)
}

// SupplierProductURL derives the catalog product page for a part
// number.
func SupplierProductURL(id string) string {
	return "https://www.lcsc.com/product-detail/" + id + ".html"
}
