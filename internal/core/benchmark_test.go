package core

import (
	"fmt"
	"testing"
)

// ============================================================================
// Conversion Function Benchmarks
// ============================================================================

// BenchmarkParseNumeric benchmarks numeric cell coercion.
// This runs three times for every row of a loaded workbook.
func BenchmarkParseNumeric(b *testing.B) {
	testCases := []string{
		"3",
		"4.5",
		"1,234.5",
		"  12.75  ",
		" 6 ",
		"1e3",
		"n/a",
		"",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ParseNumeric(tc)
		}
	}
}

// BenchmarkParseNumeric_Simple benchmarks the most common case: plain integers.
func BenchmarkParseNumeric_Simple(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseNumeric("120")
	}
}

// BenchmarkCleanCell benchmarks whitespace trimming on text cells.
func BenchmarkCleanCell(b *testing.B) {
	testCases := []string{"MS", "  50mm  ", " GI ", ""}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			CleanCell(tc)
		}
	}
}

// ============================================================================
// Pipeline Benchmarks
// ============================================================================

// benchRows builds n raw data rows cycling through a few categories and sizes.
func benchRows(n int) [][]string {
	cats := []string{"MS", "GI", "SS", "HDPE"}
	sizes := []string{"25mm", "50mm", "80mm", "100mm"}

	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{
			cats[i%len(cats)],
			sizes[(i/len(cats))%len(sizes)],
			fmt.Sprintf("%d.%d", 2+i%4, i%10),
			fmt.Sprintf("%d.5", 3+i%20),
			fmt.Sprintf("%d", i%500),
		}
	}
	return rows
}

func benchHeader() []string {
	return []string{ColCategory, ColSizeOD, ColThickness, ColWeight, ColQuantity}
}

// BenchmarkValidateHeaders benchmarks header validation, including extra columns.
func BenchmarkValidateHeaders(b *testing.B) {
	header := append(benchHeader(), "Remarks", "Location", "Supplier")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateHeaders(header, PipeFieldSpecs)
	}
}

// BenchmarkNormalize_Large benchmarks normalization of a 10k row sheet.
func BenchmarkNormalize_Large(b *testing.B) {
	rows := benchRows(10000)
	idx := MakeHeaderIndex(benchHeader())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize(rows, idx)
	}
}

// BenchmarkFilter benchmarks filtering by all three criteria.
func BenchmarkFilter(b *testing.B) {
	table := Normalize(benchRows(10000), MakeHeaderIndex(benchHeader()))
	c := ParseCriteria("MS", "50mm", "2.0")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Filter(table, c)
	}
}

// BenchmarkFilter_NoCriteria benchmarks the pass-through case.
func BenchmarkFilter_NoCriteria(b *testing.B) {
	table := Normalize(benchRows(10000), MakeHeaderIndex(benchHeader()))
	c := ParseCriteria(AllOption, AllOption, AllOption)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Filter(table, c)
	}
}

// BenchmarkBuildOptions benchmarks collecting the selection widget values.
func BenchmarkBuildOptions(b *testing.B) {
	table := Normalize(benchRows(10000), MakeHeaderIndex(benchHeader()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildOptions(table)
	}
}

// BenchmarkCheckAvailability benchmarks answering one quantity over 1k records.
func BenchmarkCheckAvailability(b *testing.B) {
	table := Normalize(benchRows(1000), MakeHeaderIndex(benchHeader()))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CheckAvailability(table, 25)
	}
}

// ============================================================================
// Parallel Benchmarks
// ============================================================================

// BenchmarkFilterParallel benchmarks concurrent searches over a shared table.
// The table is read-only once loaded, so this needs no locking.
func BenchmarkFilterParallel(b *testing.B) {
	table := Normalize(benchRows(10000), MakeHeaderIndex(benchHeader()))
	c := ParseCriteria("GI", AllOption, AllOption)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Filter(table, c)
		}
	})
}
