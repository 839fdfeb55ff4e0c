package verify

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/markup"
	"github.com/bagtoad/assetgen/internal/output"
	"github.com/bagtoad/assetgen/internal/palette"
)

var testManifest = manifest.New(
	manifest.Descriptor{Filename: "hero-desktop.jpg", Width: 120, Height: 60, Color: palette.Cream, Strategy: manifest.Minimal},
	manifest.Descriptor{Filename: "product-1.jpg", Width: 40, Height: 40, Color: palette.Cream, Strategy: manifest.Minimal},
)

func writeImage(t *testing.T, dir, name string, w, h int, f output.Format) {
	t.Helper()
	err := output.WriteFile(filepath.Join(dir, name), func(wr io.Writer) error {
		return output.Encode(wr, image.NewNRGBA(image.Rect(0, 0, w, h)), f, output.DefaultQuality)
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCheckMatchingDir(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "hero-desktop.jpg", 120, 60, output.JPEG)
	writeImage(t, dir, "product-1.jpg", 40, 40, output.JPEG)
	// Non-asset and hidden files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := Check(dir, testManifest, output.JPEG)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected clean report, got %+v", report)
	}
	if report.Checked != 2 {
		t.Errorf("Checked = %d, want 2", report.Checked)
	}
	if report.Err() != nil {
		t.Errorf("Err() = %v, want nil", report.Err())
	}
}

func TestCheckDiscrepancies(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "hero-desktop.jpg", 100, 60, output.JPEG)
	writeImage(t, dir, "stale.png", 10, 10, output.PNG)

	report, err := Check(dir, testManifest, output.JPEG)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(report.Missing) != 1 || report.Missing[0] != "product-1.jpg" {
		t.Errorf("Missing = %v, want [product-1.jpg]", report.Missing)
	}
	if len(report.Invalid) != 1 || !strings.Contains(report.Invalid[0].Reason, "size 100x60, want 120x60") {
		t.Errorf("Invalid = %+v, want a size mismatch for hero-desktop.jpg", report.Invalid)
	}
	if len(report.Extra) != 1 || report.Extra[0] != "stale.png" {
		t.Errorf("Extra = %v, want [stale.png]", report.Extra)
	}
	if !errors.Is(report.Err(), ErrMismatch) {
		t.Errorf("Err() = %v, want ErrMismatch", report.Err())
	}
}

func TestCheckWrongEncoding(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "hero-desktop.png", 120, 60, output.BMP)
	writeImage(t, dir, "product-1.png", 40, 40, output.PNG)

	report, err := Check(dir, testManifest, output.PNG)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Invalid) != 1 || report.Invalid[0].Filename != "hero-desktop.png" {
		t.Fatalf("Invalid = %+v, want hero-desktop.png", report.Invalid)
	}
	if !strings.Contains(report.Invalid[0].Reason, "encoded as bmp") {
		t.Errorf("Reason = %q", report.Invalid[0].Reason)
	}
}

func TestCheckCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hero-desktop.jpg"), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	writeImage(t, dir, "product-1.jpg", 40, 40, output.JPEG)

	report, err := Check(dir, testManifest, output.JPEG)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Invalid) != 1 || !strings.HasPrefix(report.Invalid[0].Reason, "cannot decode") {
		t.Errorf("Invalid = %+v, want a decode failure", report.Invalid)
	}
}

func TestCheckVector(t *testing.T) {
	dir := t.TempDir()
	for _, d := range testManifest.Descriptors() {
		d := d
		if d.Filename == "product-1.jpg" {
			d.Width = 41
		}
		path := filepath.Join(dir, output.Filename(d.Filename, output.SVG))
		if err := output.WriteFile(path, func(w io.Writer) error { return markup.Render(w, d) }); err != nil {
			t.Fatal(err)
		}
	}

	report, err := Check(dir, testManifest, output.SVG)
	if err != nil {
		t.Fatal(err)
	}
	if report.Checked != 2 || len(report.Missing) != 0 || len(report.Extra) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(report.Invalid) != 1 || report.Invalid[0].Filename != "product-1.svg" {
		t.Errorf("Invalid = %+v, want product-1.svg", report.Invalid)
	}
}

func TestSVGSize(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		w, h    int
		wantErr bool
	}{
		{"plain", `<svg width="200" height="250"></svg>`, 200, 250, false},
		{"prolog", `<?xml version="1.0"?><!-- c --><svg xmlns="http://www.w3.org/2000/svg" width="10px" height="20px"/>`, 10, 20, false},
		{"not svg", `<html></html>`, 0, 0, true},
		{"bad width", `<svg width="wide" height="20"/>`, 0, 0, true},
		{"empty", ``, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := svgSize(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("svgSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("svgSize() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestCheckMissingDir(t *testing.T) {
	if _, err := Check(filepath.Join(t.TempDir(), "nope"), testManifest, output.JPEG); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestCheckRejectsRenamedCollision(t *testing.T) {
	m := manifest.New(
		manifest.Descriptor{Filename: "a.jpg", Width: 10, Height: 10, Color: palette.Cream, Strategy: manifest.Minimal},
		manifest.Descriptor{Filename: "a.png", Width: 20, Height: 20, Color: palette.Cream, Strategy: manifest.Minimal},
	)
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 20, 20, output.PNG)

	if _, err := Check(dir, m, output.PNG); !errors.Is(err, manifest.ErrInvalidManifest) {
		t.Errorf("expected ErrInvalidManifest, got %v", err)
	}
}
