package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BuildOptions collects the distinct present values of each filter column.
// Text values are sorted lexicographically and thicknesses numerically.
// Empty text and missing thicknesses are never offered.
func BuildOptions(table InventoryTable) Options {
	cats := make(map[string]struct{})
	sizes := make(map[string]struct{})
	var thicknesses []decimal.Decimal

	for _, r := range table {
		if r.Category != "" {
			cats[r.Category] = struct{}{}
		}
		if r.SizeOD != "" {
			sizes[r.SizeOD] = struct{}{}
		}
		if r.ThicknessMM.Valid {
			thicknesses = append(thicknesses, r.ThicknessMM.Decimal)
		}
	}

	return Options{
		Categories:  sortedKeys(cats),
		Sizes:       sortedKeys(sizes),
		Thicknesses: distinctDecimals(thicknesses),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// distinctDecimals sorts ds and drops numerically equal entries, so 3 and
// 3.0 are offered once.
func distinctDecimals(ds []decimal.Decimal) []decimal.Decimal {
	sort.Slice(ds, func(i, j int) bool { return ds[i].LessThan(ds[j]) })

	out := make([]decimal.Decimal, 0, len(ds))
	for _, d := range ds {
		if len(out) > 0 && out[len(out)-1].Equal(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}
