// Package reader wraps the filesystem access the report pipeline needs:
// feature-file discovery, raw reads, and line splitting. No parsing logic
// lives here.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FeatureExtension is the file extension that marks a Gherkin document.
const FeatureExtension = ".feature"

// Reader reads feature files from disk.
type Reader struct{}

// New creates a filesystem reader.
func New() *Reader {
	return &Reader{}
}

// ListFeatureFiles walks folder and returns the paths of all *.feature
// files beneath it, sorted for a deterministic report order.
func (r *Reader) ListFeatureFiles(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), FeatureExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list feature files in %s: %w", folder, err)
	}
	sort.Strings(files)
	return files, nil
}

// ReadFileText returns the full contents of path as text.
func (r *Reader) ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read feature file %s: %w", path, err)
	}
	return string(data), nil
}

// SplitIntoLines splits raw text into lines for the analyzer. Blank lines
// are preserved; they separate steps, tables, and scenario blocks. CRLF
// endings are tolerated.
func (r *Reader) SplitIntoLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
