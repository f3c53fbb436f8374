package etl

import (
	"context"
	"errors"

	"gdpetl-backend/lib/scrapers/gdp"
)

const (
	ColumnCountry     = "Country"
	ColumnGDPMillions = "GDP_USD_millions"
	ColumnGDPBillions = "GDP_USD_billions"
)

var ErrNotTransformed = errors.New("table has not been transformed")

// Schema names the two columns of a Table.
type Schema struct {
	Country string `json:"country"`
	GDP     string `json:"gdp"`
}

// Row holds the figure as text until Transform fills GDP.
type Row struct {
	Country string
	GDPText string
	GDP     float64
}

type Table struct {
	Schema Schema
	Rows   []Row
}

// Transformed reports whether the GDP column holds numeric billions.
func (t *Table) Transformed() bool {
	return t.Schema.GDP == ColumnGDPBillions
}

func NewTable(schema Schema, entries []gdp.Entry) *Table {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Country: e.Country, GDPText: e.GDP}
	}
	return &Table{Schema: schema, Rows: rows}
}

type Fetcher interface {
	Fetch(ctx context.Context, link string) (string, error)
}

// Extract fetches `link` and builds a table out of the usable rows of the
// GDP list found in the response.
func Extract(ctx context.Context, fetcher Fetcher, link string, schema Schema) (*Table, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	body, err := fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}
	entries, err := gdp.Extract(ctx, body)
	if err != nil {
		return nil, err
	}
	recordRows(ctx, "extract", len(entries))
	return NewTable(schema, entries), nil
}
