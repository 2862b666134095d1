package templates

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatDecimal renders an optional number exactly, with thousands
// separators in the integer part. Missing values render as "-".
func FormatDecimal(n decimal.NullDecimal) string {
	if !n.Valid {
		return "-"
	}
	abs := n.Decimal.Abs()
	out := humanize.BigComma(abs.BigInt())
	if _, frac, ok := strings.Cut(abs.String(), "."); ok {
		out += "." + frac
	}
	if n.Decimal.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatCount renders a whole count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatLoadedAt renders a load time as "2006-01-02 15:04 (3 minutes ago)".
func FormatLoadedAt(t, now time.Time) string {
	return t.Format("2006-01-02 15:04") + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}
