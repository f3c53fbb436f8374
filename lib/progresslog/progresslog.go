// Package progresslog appends "<timestamp> : <message>" lines to a log file
// that is never rotated or truncated.
package progresslog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gdpetl-backend/lib/chrono"
)

// TimestampFormat renders as YYYY-MMM-DD-HH:MM:SS, e.g. 2024-Mar-01-10:00:00.
const TimestampFormat = "2006-Jan-02-15:04:05"

// Logger is not safe for concurrent use by multiple processes.
type Logger struct {
	path  string
	clock chrono.API
}

func New(path string, clock chrono.API) Logger {
	if clock == nil {
		clock = chrono.NewStandardImpl()
	}
	return Logger{path: path, clock: clock}
}

func (l Logger) Path() string {
	return l.path
}

// Log appends one line for `message`, creating the file if it is absent.
func (l Logger) Log(ctx context.Context, message string) error {
	timestamp := l.clock.Now().Format(TimestampFormat)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open progress log: %w", err)
	}
	_, err = fmt.Fprintf(f, "%s : %s\n", timestamp, message)
	if err != nil {
		f.Close()
		return fmt.Errorf("write progress log: %w", err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("close progress log: %w", err)
	}

	slog.InfoContext(ctx, message, "progress_log", l.path)
	return nil
}
