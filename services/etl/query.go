package etl

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var bareIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FilterQuery builds the statement selecting every country at or above
// `min` billions. the table name is only quoted when it is not a bare
// identifier.
func FilterQuery(tableName string, min float64) string {
	if !bareIdent.MatchString(tableName) {
		tableName = quoteIdent(tableName)
	}
	return fmt.Sprintf(
		"SELECT * from %s WHERE %s >= %s",
		tableName,
		ColumnGDPBillions,
		strconv.FormatFloat(min, 'f', -1, 64),
	)
}

// QueryRows runs a statement selecting (country, gdp) pairs.
func QueryRows(ctx context.Context, db *sql.DB, statement string) ([]Row, error) {
	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		err = rows.Scan(&r.Country, &r.GDP)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func formatCell(value any) any {
	switch v := value.(type) {
	case float64:
		return formatBillions(v)
	case []byte:
		return string(v)
	case nil:
		return "NULL"
	}
	return value
}

// RunQuery prints `statement` followed by its full result set to `w`.
func RunQuery(ctx context.Context, db *sql.DB, statement string, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "RunQuery")
	defer span.End()

	fmt.Fprintln(w, statement)

	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetOutputMirror(w)

	header := table.Row{""}
	for _, c := range columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	count := 0
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		err = rows.Scan(pointers...)
		if err != nil {
			return err
		}

		row := table.Row{count}
		for _, v := range values {
			row = append(row, formatCell(v))
		}
		t.AppendRow(row)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	t.Render()
	recordRows(ctx, "query", count)
	return nil
}
