package etl

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// LoadDB replaces the table `name` with the rows of `table`, the row index
// is not persisted.
func LoadDB(ctx context.Context, db *sql.DB, table *Table, name string) error {
	ctx, span := tracer.Start(ctx, "LoadDB")
	defer span.End()
	span.SetAttributes(attribute.String("table", name))

	if !table.Transformed() {
		return ErrNotTransformed
	}

	err := replaceTable(ctx, db, table, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	recordRows(ctx, "load_db", len(table.Rows))
	return nil
}

func replaceTable(ctx context.Context, db *sql.DB, table *Table, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ident := quoteIdent(name)
	_, err = tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", ident))
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE %s (%s TEXT, %s REAL)",
		ident,
		quoteIdent(table.Schema.Country),
		quoteIdent(table.Schema.GDP),
	))
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (?, ?)",
		ident,
		quoteIdent(table.Schema.Country),
		quoteIdent(table.Schema.GDP),
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range table.Rows {
		_, err = stmt.ExecContext(ctx, row.Country, row.GDP)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
