// Package verify compares an output directory against the manifest that
// should have produced it.
package verify

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/output"
	"github.com/bagtoad/assetgen/internal/scanner"
)

// ErrMismatch is returned by Report.Err when the directory does not match.
var ErrMismatch = errors.New("output does not match manifest")

// Problem describes an asset that exists but is not what the manifest asks for.
type Problem struct {
	Filename string
	Reason   string
}

// Report is the outcome of a Check.
type Report struct {
	Checked int // assets found and inspected
	Missing []string
	Invalid []Problem
	Extra   []string
}

// OK reports whether the directory matches the manifest exactly.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Invalid) == 0 && len(r.Extra) == 0
}

// Err returns nil for a clean report and an ErrMismatch summary otherwise.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %d missing, %d invalid, %d unexpected",
		ErrMismatch, len(r.Missing), len(r.Invalid), len(r.Extra))
}

// Check inspects dir for the files m produces in format f.
func Check(dir string, m manifest.Manifest, f output.Format) (*Report, error) {
	if err := m.CheckTargets(func(name string) string { return output.Filename(name, f) }); err != nil {
		return nil, err
	}

	scan, err := scanner.Scan(dir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(scan.AssetPaths))
	for _, name := range scan.Names() {
		present[name] = true
	}

	report := &Report{}
	expected := make(map[string]bool, m.Len())
	for _, d := range m.Descriptors() {
		name := output.Filename(d.Filename, f)
		expected[name] = true
		if !present[name] {
			report.Missing = append(report.Missing, name)
			continue
		}
		report.Checked++
		if reason := inspect(filepath.Join(dir, name), d, f); reason != "" {
			report.Invalid = append(report.Invalid, Problem{Filename: name, Reason: reason})
		}
	}

	for _, name := range scan.Names() {
		if !expected[name] {
			report.Extra = append(report.Extra, name)
		}
	}
	return report, nil
}

// inspect returns an empty string when path holds d in format f.
func inspect(path string, d manifest.Descriptor, f output.Format) string {
	file, err := os.Open(path)
	if err != nil {
		return err.Error()
	}
	defer file.Close()

	var w, h int
	if f.IsVector() {
		w, h, err = svgSize(file)
		if err != nil {
			return err.Error()
		}
	} else {
		cfg, format, err := image.DecodeConfig(file)
		if err != nil {
			return fmt.Sprintf("cannot decode: %v", err)
		}
		if format != f.String() {
			return fmt.Sprintf("encoded as %s, want %s", format, f)
		}
		w, h = cfg.Width, cfg.Height
	}

	if w != d.Width || h != d.Height {
		return fmt.Sprintf("size %dx%d, want %dx%d", w, h, d.Width, d.Height)
	}
	return ""
}

// svgSize reads the width and height attributes of the root svg element.
func svgSize(r io.Reader) (int, int, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, fmt.Errorf("no svg root element: %v", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return 0, 0, fmt.Errorf("root element is <%s>, want <svg>", start.Name.Local)
		}

		var w, h int
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "width":
				w, err = strconv.Atoi(strings.TrimSuffix(attr.Value, "px"))
			case "height":
				h, err = strconv.Atoi(strings.TrimSuffix(attr.Value, "px"))
			}
			if err != nil {
				return 0, 0, fmt.Errorf("bad %s attribute %q", attr.Name.Local, attr.Value)
			}
		}
		return w, h, nil
	}
}
