package etl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gdpetl-backend/lib/chrono"
	"gdpetl-backend/lib/progresslog"
	"gdpetl-backend/lib/restyutil"
	"gdpetl-backend/lib/scrapers/gdp"
)

type Options struct {
	// Fetcher defaults to a gdp.Client.
	Fetcher Fetcher
	// HttpOutput receives HTTP dumps of the default fetcher, it may be nil.
	HttpOutput restyutil.InstrumentOutput
	// Stdout receives the query output, it defaults to os.Stdout.
	Stdout io.Writer
	Clock  chrono.API
}

// Run executes fetch, extract, transform, load to csv, load to the database
// and the filter query in order. the first error stops the run, the progress
// log then ends at the last stage reached. the database is closed on every
// path once it has been opened.
func Run(ctx context.Context, cfg Config, opts Options) (err error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	if opts.Fetcher == nil {
		opts.Fetcher = gdp.NewClient(gdp.ClientOptions{Output: opts.HttpOutput})
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	progress := progresslog.New(cfg.LogPath, opts.Clock)
	logProgress := func(message string) error {
		return progress.Log(ctx, message)
	}

	if err = logProgress("ETL Job Started"); err != nil {
		return err
	}

	if err = logProgress("Extract phase Started"); err != nil {
		return err
	}
	table, err := Extract(ctx, opts.Fetcher, cfg.URL, cfg.TableAttribs)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if err = logProgress("Data extraction complete. Initiating Transformation process."); err != nil {
		return err
	}

	if err = logProgress("Transform phase Started"); err != nil {
		return err
	}
	if err = Transform(ctx, table); err != nil {
		return err
	}
	if err = logProgress("Data transformation complete. Initiating loading process."); err != nil {
		return err
	}

	if err = logProgress("Load phase Started"); err != nil {
		return err
	}
	if err = LoadCSV(ctx, table, cfg.CSVPath); err != nil {
		return fmt.Errorf("load csv: %w", err)
	}
	if err = logProgress("Data saved to CSV file."); err != nil {
		return err
	}

	db, err := cfg.Database.OpenDB()
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.Database, err)
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()
	if err = logProgress("SQL Connection initiated."); err != nil {
		return err
	}

	if err = LoadDB(ctx, db, table, cfg.TableName); err != nil {
		return fmt.Errorf("load db: %w", err)
	}
	if err = logProgress("Data loaded to Database as table. Running the query."); err != nil {
		return err
	}

	statement := FilterQuery(cfg.TableName, cfg.MinGDPBillions)
	if err = RunQuery(ctx, db, statement, opts.Stdout); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return logProgress("Process Complete")
}
