package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrPathIsDirectory is returned when the path points to a directory
// instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher reads configuration data from a file. The file is read once, on
// the first Fetch, and the contents are cached for later calls.
type Fetcher struct {
	filepath string

	once sync.Once
	data []byte
	err  error
}

// New creates a Fetcher for the given path. The path is validated up
// front; reading is deferred until Fetch.
func New(fpath string) (*Fetcher, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	return &Fetcher{filepath: cleanPath}, nil
}

// Constructor returns a function that creates a Fetcher for the given path.
// This shape is Fx-friendly, letting a DI container decide when the
// instantiation (and its validation) happens.
func Constructor(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return New(fpath)
	}
}

// Path returns the cleaned path the Fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the file contents. A copy is returned so callers
// cannot mutate the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	f.once.Do(func() {
		f.data, f.err = os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	})

	if f.err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, f.err)
	}

	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
