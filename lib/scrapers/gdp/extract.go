package gdp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gdpetl-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Placeholder marks a figure that is not available in the source table.
const Placeholder = "—"

// TableIndex is the document order position of the <tbody> holding the
// country figures. the page has no stable id or class to select it by, so a
// change in layout only needs this lookup updated.
const TableIndex = 2

var ErrTableNotFound = errors.New("gdp table not found")

// Entry is one country row as it appears in the source table.
type Entry struct {
	Country string
	// GDP is the literal cell text, a comma grouped figure in millions of USD.
	GDP string
}

// locateTable selects the <tbody> holding the figures.
func locateTable(doc *goquery.Document) (*goquery.Selection, error) {
	bodies := doc.Find("tbody")
	if bodies.Length() <= TableIndex {
		return nil, fmt.Errorf(
			"%w: expected at least %d <tbody> elements, found %d",
			ErrTableNotFound, TableIndex+1, bodies.Length(),
		)
	}
	return bodies.Eq(TableIndex), nil
}

// parseRow returns false for rows that do not carry a usable figure, they are
// meant to be dropped without being reported.
func parseRow(row *goquery.Selection) (Entry, bool) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return Entry{}, false
	}

	link := cells.Eq(0).Find("a").First()
	if link.Length() == 0 {
		return Entry{}, false
	}
	gdpCell := cells.Eq(2)
	if strings.TrimSpace(gdpCell.Text()) == Placeholder {
		return Entry{}, false
	}

	country, ok := htmlutil.SelectionFirstText(link)
	if !ok || strings.TrimSpace(country) == "" {
		return Entry{}, false
	}
	gdp, ok := htmlutil.SelectionFirstText(gdpCell)
	if !ok || strings.TrimSpace(gdp) == "" {
		return Entry{}, false
	}

	return Entry{Country: country, GDP: gdp}, true
}

// ExtractDocument walks the rows of the figures table in document order.
func ExtractDocument(ctx context.Context, doc *goquery.Document) ([]Entry, error) {
	_, span := tracer.Start(ctx, "ExtractDocument")
	defer span.End()

	table, err := locateTable(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to locate table")
		return nil, err
	}

	rows := table.Find("tr")
	entries := make([]Entry, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		entry, ok := parseRow(row)
		if !ok {
			return
		}
		entries = append(entries, entry)
	})

	span.SetAttributes(
		attribute.Int("rows", rows.Length()),
		attribute.Int("entries", len(entries)),
	)
	return entries, nil
}

// Extract parses `body` as HTML and runs ExtractDocument on it.
func Extract(ctx context.Context, body string) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	return ExtractDocument(ctx, doc)
}
