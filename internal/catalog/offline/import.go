package offline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/boltdb/bolt"
	"github.com/xuri/excelize/v2"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// Columns of the published SMT parts spreadsheet:
// LCSC Part | First Category | Second Category | MFR.Part | Package |
// Solder Joint | Manufacturer | Library Type | Description |
// Datasheet | Price | Stock
const (
	colID           = 0
	colMfrPart      = 3
	colPackage      = 4
	colManufacturer = 6
	colDescription  = 8
	colPrice        = 10
	colStock        = 11
)

// importBatchSize bounds one bolt transaction and one bleve batch.
const importBatchSize = 1000

// ImportSpreadsheet streams the parts spreadsheet at path into the
// library and returns the number of parts indexed. Rows whose first
// column is not a part number (the header among them) are dropped.
// Re-importing overwrites records in place.
func (l *Library) ImportSpreadsheet(ctx context.Context, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	count := 0
	batch := make([]record, 0, importBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := l.store(batch); err != nil {
			return err
		}
		count += len(batch)
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		row, err := rows.Columns()
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}
		rec, ok := parseRow(row)
		if !ok {
			continue
		}

		batch = append(batch, rec)
		if len(batch) == importBatchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}
	if err := flush(); err != nil {
		return count, err
	}
	return count, nil
}

// store writes one batch to the parts bucket and the search index.
func (l *Library) store(batch []record) error {
	if err := l.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(componentsBucket))
		for _, rec := range batch {
			encoded, err := encodeRecord(rec)
			if err != nil {
				return fmt.Errorf("encode %s: %w", rec.ID, err)
			}
			if err := bucket.Put([]byte(rec.ID), encoded); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("store parts: %w", err)
	}

	indexBatch := l.index.NewBatch()
	for _, rec := range batch {
		err := indexBatch.Index(rec.ID, indexDoc{
			MfrPart:     rec.MfrPart,
			Description: rec.Description,
			Package:     rec.Package,
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", rec.ID, err)
		}
	}
	if err := l.index.Batch(indexBatch); err != nil {
		return fmt.Errorf("index parts: %w", err)
	}
	return nil
}

// parseRow maps one spreadsheet row onto a record.
func parseRow(row []string) (record, bool) {
	if len(row) <= colDescription {
		return record{}, false
	}
	id, ok := domain.NormalizeSupplierID(row[colID])
	if !ok {
		return record{}, false
	}

	rec := record{
		ID:           id,
		MfrPart:      strings.TrimSpace(row[colMfrPart]),
		Package:      strings.TrimSpace(row[colPackage]),
		Manufacturer: strings.TrimSpace(row[colManufacturer]),
		Description:  strings.TrimSpace(row[colDescription]),
	}
	if len(row) > colPrice {
		rec.Price = firstPriceBreak(row[colPrice])
	}
	if len(row) > colStock {
		rec.Stock, _ = strconv.Atoi(strings.TrimSpace(row[colStock]))
	}
	return rec, true
}

// firstPriceBreak parses the "1-199:0.0069,200-:0.0027" price column
// and returns the unit price at the lowest quantity break.
func firstPriceBreak(s string) float64 {
	first := s
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	if i := strings.IndexByte(first, ':'); i >= 0 {
		first = first[i+1:]
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0
	}
	return price
}
