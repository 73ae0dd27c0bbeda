// Package index walks a project directory and ranks its paths against
// fuzzy queries for open mode. Ranking is also exposed for other
// candidate lists, such as symbol names.
package index

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
)

// Common errors.
var (
	ErrNotBuilt     = errors.New("index has not been built")
	ErrTooManyFiles = errors.New("file limit reached")
)

// DefaultMaxFiles bounds the number of indexed paths.
const DefaultMaxFiles = 50000

// DefaultIgnoreDirs are directory names never descended into.
var DefaultIgnoreDirs = []string{".git", ".hg", ".svn", "node_modules", "vendor", "target"}

// Config configures an Index.
type Config struct {
	MaxFiles   int
	IgnoreDirs []string
}

// DefaultConfig returns the default index configuration.
func DefaultConfig() Config {
	return Config{
		MaxFiles:   DefaultMaxFiles,
		IgnoreDirs: DefaultIgnoreDirs,
	}
}

// Option configures an Index.
type Option func(*Config)

// WithMaxFiles sets the file limit.
func WithMaxFiles(n int) Option {
	return func(c *Config) {
		c.MaxFiles = n
	}
}

// WithIgnoreDirs replaces the ignored directory names.
func WithIgnoreDirs(dirs ...string) Option {
	return func(c *Config) {
		c.IgnoreDirs = dirs
	}
}

// Index is the list of regular files below a root directory, stored as
// slash-separated paths relative to the root.
type Index struct {
	root   string
	config Config
	ignore map[string]bool
	paths  []string
	built  bool
}

// New creates an index rooted at root. Call Build before ranking.
func New(root string, opts ...Option) *Index {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	ignore := make(map[string]bool, len(config.IgnoreDirs))
	for _, d := range config.IgnoreDirs {
		ignore[d] = true
	}
	return &Index{root: root, config: config, ignore: ignore}
}

// Root returns the indexed directory.
func (ix *Index) Root() string {
	return ix.root
}

// Build walks the root and replaces the indexed paths. Unreadable entries
// are skipped. Reaching the file limit keeps what was collected and
// returns ErrTooManyFiles.
func (ix *Index) Build() error {
	var paths []string
	var limited bool

	err := filepath.WalkDir(ix.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != ix.root {
				return filepath.SkipDir
			}
			if path == ix.root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != ix.root && ix.ignore[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ix.config.MaxFiles > 0 && len(paths) >= ix.config.MaxFiles {
			limited = true
			return filepath.SkipAll
		}

		rel, err := filepath.Rel(ix.root, path)
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return err
	}

	sort.Strings(paths)
	ix.paths = paths
	ix.built = true

	if limited {
		return ErrTooManyFiles
	}
	return nil
}

// Paths returns the indexed paths in lexical order.
func (ix *Index) Paths() []string {
	return ix.paths
}

// Count returns the number of indexed paths.
func (ix *Index) Count() int {
	return len(ix.paths)
}

// Find ranks the indexed paths against query and returns at most limit
// of them.
func (ix *Index) Find(query string, limit int) ([]string, error) {
	if !ix.built {
		return nil, ErrNotBuilt
	}
	matches := Rank(ix.paths, query, limit)
	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = m.Text
	}
	return results, nil
}
