package core

// Normalize converts raw data rows into typed records.
//
// rows excludes the header; rows[0] is spreadsheet line 2. Text columns are
// trimmed, numeric columns go through ParseNumeric. Fully blank rows are
// skipped (spreadsheets often carry formatted but empty trailing rows); the
// remaining records keep their original line numbers.
//
// Normalize cannot fail. Unreadable numbers become missing values.
func Normalize(rows [][]string, idx HeaderIndex) InventoryTable {
	table := make(InventoryTable, 0, len(rows))

	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		table = append(table, PipeRecord{
			Line:        i + 2,
			Category:    cell(row, idx, ColCategory),
			SizeOD:      cell(row, idx, ColSizeOD),
			ThicknessMM: ParseNumeric(cell(row, idx, ColThickness)),
			WeightKG:    ParseNumeric(cell(row, idx, ColWeight)),
			Quantity:    ParseNumeric(cell(row, idx, ColQuantity)),
		})
	}

	return table
}
