package core

import (
	"strings"
)

// AllOption is the selection value meaning "no constraint".
const AllOption = "All"

// Criteria is the user's current selection. An empty value or AllOption
// leaves that column unconstrained.
type Criteria struct {
	Category  string `json:"category"`
	SizeOD    string `json:"sizeOD"`
	Thickness string `json:"thickness"`
}

// ParseCriteria builds Criteria from raw selection strings. Values are
// trimmed; an unparseable thickness is kept and simply matches nothing.
func ParseCriteria(category, size, thickness string) Criteria {
	return Criteria{
		Category:  strings.TrimSpace(category),
		SizeOD:    strings.TrimSpace(size),
		Thickness: strings.TrimSpace(thickness),
	}
}

// ColumnFilter is a single active equality constraint on one column.
type ColumnFilter struct {
	Column string // Column header name
	Value  string // Selected value as shown in the widget
	match  func(PipeRecord) bool
}

// Matches reports whether r satisfies the constraint.
func (f ColumnFilter) Matches(r PipeRecord) bool {
	return f.match(r)
}

// isAll reports whether a selection value leaves its column unconstrained.
func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == AllOption
}

// Active reports whether any column is constrained. Callers use this, not the
// size of the filtered output, to tell "no matches" from "no filters".
func (c Criteria) Active() bool {
	return !isAll(c.Category) || !isAll(c.SizeOD) || !isAll(c.Thickness)
}

// Filters returns the active constraints (combined with AND logic).
func (c Criteria) Filters() []ColumnFilter {
	var filters []ColumnFilter

	if !isAll(c.Category) {
		want := strings.TrimSpace(c.Category)
		filters = append(filters, ColumnFilter{
			Column: ColCategory,
			Value:  want,
			match:  func(r PipeRecord) bool { return r.Category == want },
		})
	}

	if !isAll(c.SizeOD) {
		want := strings.TrimSpace(c.SizeOD)
		filters = append(filters, ColumnFilter{
			Column: ColSizeOD,
			Value:  want,
			match:  func(r PipeRecord) bool { return r.SizeOD == want },
		})
	}

	if !isAll(c.Thickness) {
		want := ParseNumeric(c.Thickness)
		filters = append(filters, ColumnFilter{
			Column: ColThickness,
			Value:  strings.TrimSpace(c.Thickness),
			match: func(r PipeRecord) bool {
				// A missing value on either side never matches.
				if !want.Valid || !r.ThicknessMM.Valid {
					return false
				}
				return r.ThicknessMM.Decimal.Equal(want.Decimal)
			},
		})
	}

	return filters
}

// Filter returns the records satisfying every active constraint, in table
// order. With no active constraint every record passes. No match yields an
// empty, non-nil slice.
func Filter(table InventoryTable, c Criteria) []PipeRecord {
	filters := c.Filters()
	out := make([]PipeRecord, 0, len(table))

	for _, r := range table {
		keep := true
		for _, f := range filters {
			if !f.Matches(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}

	return out
}
