// Package fs provides file system adapters: extractor discovery, the output
// lock probe, output verification, and content fingerprinting.
package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Discoverer enumerates extractor scripts with filepath.Glob.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Discover returns the sorted absolute paths of every .py file directly in
// dir. The directory is flat; subdirectories are not descended into.
func (d *Discoverer) Discover(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.py")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob extractor directory"), "pattern", pattern)
	}

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve extractor path"), "path", m)
		}
		result = append(result, abs)
	}
	sort.Strings(result)

	return result, nil
}
