package core

import (
	"github.com/shopspring/decimal"
)

// Column headers the stock workbook must carry. Matching is exact and
// case-sensitive after trimming surrounding whitespace.
const (
	ColCategory  = "Pipe Category"
	ColSizeOD    = "Pipe Size (OD)"
	ColThickness = "Thickness (mm)"
	ColWeight    = "Weight (kg)"
	ColQuantity  = "Quantity"
)

// FieldType represents the expected data type for a workbook column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
)

// FieldSpec describes a single workbook column.
type FieldSpec struct {
	Name     string    // Column header name
	Type     FieldType // Expected data type
	Required bool      // Column must exist in the header row
}

// PipeFieldSpecs lists the columns of a stock workbook in display order.
var PipeFieldSpecs = []FieldSpec{
	{Name: ColCategory, Type: FieldText, Required: true},
	{Name: ColSizeOD, Type: FieldText, Required: true},
	{Name: ColThickness, Type: FieldNumeric, Required: true},
	{Name: ColWeight, Type: FieldNumeric, Required: true},
	{Name: ColQuantity, Type: FieldNumeric, Required: true},
}

// HeaderIndex maps trimmed column names to their position in a row.
type HeaderIndex map[string]int

// PipeRecord is one row of inventory.
//
// Line is the 1-based spreadsheet line the record came from and is the
// record's identity. Two records may share category, size and thickness.
type PipeRecord struct {
	Line        int                 `json:"line"`
	Category    string              `json:"category"`
	SizeOD      string              `json:"sizeOD"`
	ThicknessMM decimal.NullDecimal `json:"thicknessMm"`
	WeightKG    decimal.NullDecimal `json:"weightKg"`
	Quantity    decimal.NullDecimal `json:"quantity"`
}

// InventoryTable is the ordered set of records loaded for a session.
// It is never modified after load.
type InventoryTable []PipeRecord

// Len returns the number of records.
func (t InventoryTable) Len() int { return len(t) }

// AvailabilityResult is the answer for one filtered record.
type AvailabilityResult struct {
	Record            PipeRecord          `json:"record"`
	RequestedQuantity int                 `json:"requestedQuantity"`
	Available         bool                `json:"available"`
	StockDescription  string              `json:"stockDescription"`
	TotalWeight       decimal.NullDecimal `json:"totalWeightKg"`
}

// Options holds the distinct values offered by each selection widget.
type Options struct {
	Categories  []string          `json:"categories"`
	Sizes       []string          `json:"sizes"`
	Thicknesses []decimal.Decimal `json:"thicknesses"`
}
