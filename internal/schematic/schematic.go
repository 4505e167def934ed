package schematic

import (
	"fmt"
	"os"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/sexp"
)

// Schema names the schematic properties the tool writes. The zero
// value means the default LCSC/URL pair.
type Schema struct {
	// IDProperty holds the supplier part number.
	IDProperty string

	// URLProperty holds the supplier product page.
	URLProperty string
}

// DefaultSchema returns the stock property names.
func DefaultSchema() Schema {
	return Schema{
		IDProperty:  domain.PropSupplierID,
		URLProperty: domain.PropSupplierURL,
	}
}

func (sc Schema) withDefaults() Schema {
	if sc.IDProperty == "" {
		sc.IDProperty = domain.PropSupplierID
	}
	if sc.URLProperty == "" {
		sc.URLProperty = domain.PropSupplierURL
	}
	return sc
}

// Schematic owns one parsed schematic document. All reads and writes
// go through the single tree it holds; serialization reproduces every
// untouched byte of the source file.
type Schematic struct {
	doc    *sexp.Document
	schema Schema
	path   string
}

// Load reads and parses a schematic file.
func Load(path string, schema Schema) (*Schematic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schematic: %w", err)
	}

	s, err := Parse(src, schema)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Parse parses schematic source bytes. A syntax error aborts the
// whole parse; there is no partial document.
func Parse(src []byte, schema Schema) (*Schematic, error) {
	doc, err := sexp.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Schematic{doc: doc, schema: schema.withDefaults()}, nil
}

// Path returns the file the schematic was loaded from, "" when it was
// parsed from a buffer.
func (s *Schematic) Path() string {
	return s.path
}

// Bytes serializes the document.
func (s *Schematic) Bytes() []byte {
	return s.doc.Bytes()
}

// Save writes the serialized document to path, or back to the source
// file when path is empty.
func (s *Schematic) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return fmt.Errorf("no output path")
	}
	if err := os.WriteFile(path, s.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing schematic: %w", err)
	}
	return nil
}
