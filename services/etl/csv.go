package etl

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

func formatBillions(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// LoadCSV writes the table to `path` with a leading unlabeled row index
// column, replacing any existing file.
func LoadCSV(ctx context.Context, table *Table, path string) error {
	_, span := tracer.Start(ctx, "LoadCSV")
	defer span.End()

	if !table.Transformed() {
		return ErrNotTransformed
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write([]string{"", table.Schema.Country, table.Schema.GDP})
	if err != nil {
		return err
	}
	for i, row := range table.Rows {
		err = w.Write([]string{
			strconv.Itoa(i),
			row.Country,
			formatBillions(row.GDP),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	recordRows(ctx, "load_csv", len(table.Rows))
	return f.Close()
}

// ReadCSV reads a file written by LoadCSV back into a table.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %s: missing header", path)
	}

	header := records[0]
	table := &Table{
		Schema: Schema{Country: header[1], GDP: header[2]},
		Rows:   make([]Row, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		value, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("read csv %s: row %s: %w", path, record[0], err)
		}
		table.Rows = append(table.Rows, Row{
			Country: record[1],
			GDPText: record[2],
			GDP:     value,
		})
	}
	return table, nil
}
