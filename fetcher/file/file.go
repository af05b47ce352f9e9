package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements the fieldpath.DataFetcher interface for document files.
// The file contents are read at construction time and cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a Fetcher for the
// given path. The file is read when the constructor runs, not when NewFetcher
// is called; this keeps instantiation under the DI container's control.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := readDocument(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

func readDocument(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return data, nil
}

// Fetch returns a copy of the cached document data. A copy is returned so
// callers cannot mutate the cached snapshot.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
