// Package file writes bill-of-materials exports in the formats the
// JLCPCB order flow accepts.
package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.BOMWriter = (*Writer)(nil)

// header matches the column layout the JLCPCB BOM upload expects.
var header = []string{"Comment", "Designator", "Footprint", "LCSC Part"}

// Writer writes BOM exports, picking the format from the target
// extension: .xlsx gets a spreadsheet, everything else CSV.
type Writer struct{}

// NewWriter creates a new BOM writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write writes the BOM to path.
func (w *Writer) Write(bom *domain.BOM, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeXLSX(bom, path)
	}
	return writeCSV(bom, path)
}

// row renders one BOM line in upload column order. The Comment
// column carries the component value.
func row(line domain.BOMLine) []string {
	return []string{
		line.Value,
		strings.Join(line.References, ","),
		line.Footprint,
		line.SupplierID,
	}
}

func writeCSV(bom *domain.BOM, path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer := csv.NewWriter(fp)
	_ = writer.Write(header)
	for _, line := range bom.Lines {
		_ = writer.Write(row(line))
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		fp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fp.Close()
}

func writeXLSX(bom *domain.BOM, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, line := range bom.Lines {
		if err := setRow(f, sheet, i+2, row(line)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
