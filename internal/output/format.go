// Package output encodes rendered assets and writes them to the output
// directory.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for unknown format names and for raster
// encoding into a vector format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultQuality is the JPEG/WebP quality used when none is configured.
const DefaultQuality = 90

// Format is an output encoding.
type Format int

const (
	JPEG Format = iota
	PNG
	BMP
	TIFF
	WebP
	SVG
)

var formatNames = map[Format]string{
	JPEG: "jpeg",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	WebP: "webp",
	SVG:  "svg",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a format name (or common alias) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "jpeg", "jpg", "":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	case "webp":
		return WebP, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Extension returns the file extension (with dot) for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	case WebP:
		return ".webp"
	case SVG:
		return ".svg"
	default:
		return ".jpg"
	}
}

// IsVector reports whether the format holds markup rather than pixels.
func (f Format) IsVector() bool {
	return f == SVG
}

// Filename replaces the extension of name so it matches the format.
// JPEG keeps .jpg and .jpeg names as they are.
func Filename(name string, f Format) string {
	ext := filepath.Ext(name)
	if f == JPEG {
		switch strings.ToLower(ext) {
		case ".jpg", ".jpeg":
			return name
		}
	}
	return strings.TrimSuffix(name, ext) + f.Extension()
}

// Encode writes img to w in the given raster format. quality applies to
// JPEG and WebP and falls back to DefaultQuality when out of range.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	switch f {
	case JPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding bmp: %w", err)
		}
	case TIFF:
		if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("encoding tiff: %w", err)
		}
	case WebP:
		if err := webp.Encode(w, img, webp.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
	default:
		return fmt.Errorf("%w: cannot encode raster image as %v", ErrUnsupportedFormat, f)
	}
	return nil
}
