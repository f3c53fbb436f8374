package restyutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	devenv "gdpetl-backend/dev/env"
)

var ErrOutputNotEmpty = errors.New("http output directory is not empty")

// FilesystemOutput writes every recorded HTTP message to its own file
// inside a directory that must be missing or empty on creation.
type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	dir, err := devenv.ResolvePath(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return FilesystemOutput{}, err
	}
	if len(entries) > 0 {
		return FilesystemOutput{}, fmt.Errorf("%w: %s", ErrOutputNotEmpty, dir)
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message info file", "id", id, "err", err)
	}
}
