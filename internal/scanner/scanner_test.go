package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, f := range names {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("fake"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	assetFiles := []string{"hero.jpg", "logo.png", "shot.bmp", "web.webp", "scan.tiff", "card.svg"}
	otherFiles := []string{"readme.txt", "anim.gif", "assets.yaml"}
	writeFiles(t, dir, assetFiles...)
	writeFiles(t, dir, otherFiles...)

	// Create a subdirectory (should be ignored)
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.AssetPaths) != len(assetFiles) {
		t.Errorf("expected %d assets, got %d", len(assetFiles), len(result.AssetPaths))
	}
	if result.SkippedCount != len(otherFiles) {
		t.Errorf("expected %d skipped, got %d", len(otherFiles), result.SkippedCount)
	}
}

func TestScanSortedNames(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "product-2.jpg", "hero-desktop.jpg", "product-1.jpg")

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	got := strings.Join(result.Names(), ",")
	if got != "hero-desktop.jpg,product-1.jpg,product-2.jpg" {
		t.Errorf("Names() = %s", got)
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "PHOTO.JPG", "Image.PNG", "pic.JPEG", "Card.SVG")

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.AssetPaths) != 4 {
		t.Errorf("expected 4 assets, got %d", len(result.AssetPaths))
	}
}

func TestScanEmptyDir(t *testing.T) {
	result, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("empty directory should not be an error: %v", err)
	}
	if len(result.AssetPaths) != 0 || result.SkippedCount != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestScanNonexistentDir(t *testing.T) {
	_, err := Scan("/nonexistent/path/12345")
	if err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

func TestScanNotADir(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "testfile")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, err = Scan(f.Name())
	if err == nil {
		t.Error("expected error for file (not directory)")
	}
}

func TestScanSkipsHiddenFiles(t *testing.T) {
	dir := t.TempDir()

	writeFiles(t, dir, "photo.jpg")
	// Hidden files (should be ignored entirely, not even counted as skipped)
	writeFiles(t, dir, ".hidden.jpg", ".DS_Store", ".photo.jpg.tmp")

	result, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.AssetPaths) != 1 {
		t.Errorf("expected 1 asset, got %d: %v", len(result.AssetPaths), result.AssetPaths)
	}
	if result.SkippedCount != 0 {
		t.Errorf("expected 0 skipped (hidden files should be ignored), got %d", result.SkippedCount)
	}
}
