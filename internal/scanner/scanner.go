// Package scanner lists the asset files present in an output directory.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions contains the set of asset file extensions we inspect.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
	".svg":  true,
}

// Result holds the output of scanning a directory.
type Result struct {
	AssetPaths   []string // sorted by name
	SkippedCount int
}

// Names returns the base names of the scanned assets.
func (r *Result) Names() []string {
	names := make([]string, len(r.AssetPaths))
	for i, p := range r.AssetPaths {
		names[i] = filepath.Base(p)
	}
	return names
}

// Scan walks the given directory (non-recursive) and returns asset file
// paths and a count of skipped non-asset files. An empty directory is not
// an error.
func Scan(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if SupportedExtensions[ext] {
			result.AssetPaths = append(result.AssetPaths, filepath.Join(dir, entry.Name()))
		} else {
			result.SkippedCount++
		}
	}
	sort.Strings(result.AssetPaths)

	return result, nil
}
