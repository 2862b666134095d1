package core

// convert.go turns raw workbook cells into typed values.
//
// Stock sheets are maintained by hand, so cells arrive in whatever shape the
// editor left them:
//   - stray leading/trailing whitespace, including non-breaking spaces
//   - numbers typed as text, sometimes with thousands separators
//   - placeholders such as "-", "N/A" or "nan" where a value is unknown
//
// Conversion is best-effort and never fails. Anything that is not clearly a
// number becomes a missing value (Valid=false).

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericRegex validates that a string is a plain numeric literal.
// Matches integers, decimals, and scientific notation with an exponent of at
// most three digits.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d{1,3})?$`)

// groupedRegex matches numbers written with comma thousands separators,
// e.g. "1,250" or "12,500.75". Comma-as-decimal ("12,5") does not match.
var groupedRegex = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// CleanCell trims surrounding whitespace from a cell value.
func CleanCell(s string) string {
	return strings.TrimSpace(s)
}

// ParseNumeric converts a cell to an optional decimal.
// Returns Valid=false for empty or non-numeric input.
func ParseNumeric(s string) decimal.NullDecimal {
	s = CleanCell(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	if groupedRegex.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}

	if !numericRegex.MatchString(s) {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatNumeric renders an optional decimal for display and export.
// Missing values render as the empty string.
func FormatNumeric(n decimal.NullDecimal) string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.String()
}
