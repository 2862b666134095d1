package core

// workbook.go reads and writes stock workbooks with excelize.
//
// Reading uses raw cell values rather than the display format, so a weight
// formatted as "12.50 kg" by a number format is still read as 12.5. The file
// handle is opened and closed within a single call.

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet is the content of one worksheet: a header row and the data rows
// beneath it.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ReadWorkbook parses the first worksheet of the workbook at path.
// Any failure to open or read the file is returned as an ErrParse LoadError.
func ReadWorkbook(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrParse, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheet, err := readFirstSheet(f)
	if err != nil {
		return nil, &LoadError{Kind: ErrParse, Path: path, Err: err}
	}
	return sheet, nil
}

func readFirstSheet(f *excelize.File) (*Sheet, error) {
	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, errors.New("workbook has no worksheets")
	}

	rows, err := f.GetRows(names[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", names[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty workbook: sheet %q has no header row", names[0])
	}

	return &Sheet{
		Name:   names[0],
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

// availabilityHeader is the column layout of an exported results workbook.
var availabilityHeader = []any{
	ColCategory, ColSizeOD, ColThickness,
	"Quantity Requested", "Available", "Stock Quantity", "Total Weight (kg)",
}

// WriteAvailabilityWorkbook writes results as a single-sheet workbook to w.
// Numeric cells are written as numbers; missing values are left blank.
func WriteAvailabilityWorkbook(w io.Writer, results []AvailabilityResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetRow(sheet, "A1", &availabilityHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, res := range results {
		available := "No"
		if res.Available {
			available = "Yes"
		}
		row := []any{
			res.Record.Category,
			res.Record.SizeOD,
			numericCell(res.Record.ThicknessMM),
			res.RequestedQuantity,
			available,
			res.StockDescription,
			numericCell(res.TotalWeight),
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// numericCell returns a float for present values and nil (blank) otherwise.
func numericCell(n decimal.NullDecimal) any {
	if !n.Valid {
		return nil
	}
	return n.Decimal.InexactFloat64()
}
