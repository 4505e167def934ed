// Package offline provides catalog search over a locally imported
// copy of the JLCPCB SMT parts list.
package offline

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
)

// Ensure Library implements the interfaces.
var (
	_ driven.CatalogSearcher = (*Library)(nil)
	_ driven.CatalogImporter = (*Library)(nil)
)

// DefaultPageSize is the number of candidates a search returns.
const DefaultPageSize = 10

// Library storage files under the library directory.
const (
	dbFile    = "parts.db"
	indexFile = "parts.bleve"
)

// componentsBucket holds gob-encoded records keyed by part number.
const componentsBucket = "components"

// Config holds configuration for the offline library.
type Config struct {
	// Dir is the library directory (required). It is created when
	// missing.
	Dir string

	// PageSize is the number of candidates returned per search
	// (default: 10).
	PageSize int
}

// Library is a parts catalog stored on disk: a bolt store for the
// part records and a bleve index for full-text search over them.
type Library struct {
	dir      string
	pageSize int
	db       *bolt.DB
	index    bleve.Index
}

// record is the stored form of one catalog entry.
type record struct {
	ID           string
	MfrPart      string
	Manufacturer string
	Package      string
	Description  string
	Stock        int
	Price        float64
}

// indexDoc is the searchable projection of a record.
type indexDoc struct {
	MfrPart     string
	Description string
	Package     string
}

// NewLibrary creates or opens the library under cfg.Dir.
func NewLibrary(cfg Config) (*Library, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("offline: library directory is required")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create library dir: %w", err)
	}

	db, err := bolt.Open(filepath.Join(cfg.Dir, dbFile), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open parts store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(componentsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create parts bucket: %w", err)
	}

	var index bleve.Index
	indexPath := filepath.Join(cfg.Dir, indexFile)
	if _, statErr := os.Stat(indexPath); os.IsNotExist(statErr) {
		index, err = bleve.New(indexPath, bleve.NewIndexMapping())
	} else {
		index, err = bleve.Open(indexPath)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open search index: %w", err)
	}

	return &Library{
		dir:      cfg.Dir,
		pageSize: cfg.PageSize,
		db:       db,
		index:    index,
	}, nil
}

// Count returns the number of parts in the library.
func (l *Library) Count() (int, error) {
	var n int
	err := l.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(componentsBucket)).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// Close releases the store and the index.
func (l *Library) Close() error {
	indexErr := l.index.Close()
	dbErr := l.db.Close()
	if indexErr != nil {
		return indexErr
	}
	return dbErr
}

// candidate converts the stored record to its domain form.
func (r record) candidate() domain.Candidate {
	return domain.Candidate{
		ID:           r.ID,
		MfrPart:      r.MfrPart,
		Manufacturer: r.Manufacturer,
		Description:  r.Description,
		Package:      r.Package,
		Stock:        r.Stock,
		Price:        r.Price,
		URL:          domain.SupplierProductURL(r.ID),
	}
}

func encodeRecord(r record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(data []byte, r *record) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(r)
}
