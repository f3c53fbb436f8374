package etl

func transformedTable(rows ...Row) *Table {
	return &Table{
		Schema: Schema{Country: ColumnCountry, GDP: ColumnGDPBillions},
		Rows:   rows,
	}
}
