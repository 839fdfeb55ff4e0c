// Package typeface resolves the font used for asset labels. Resolution
// always succeeds: a missing or unreadable font file falls back to an
// embedded face.
package typeface

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultPath is the system font tried first.
const DefaultPath = "/System/Library/Fonts/Arial.ttf"

// ErrFontUnavailable reports that the configured font could not be used.
// It is informational only; a fallback face is always available.
var ErrFontUnavailable = errors.New("font unavailable")

// Source names where a Resolver's glyphs come from.
type Source int

const (
	SourceFile Source = iota
	SourceEmbedded
	SourceBitmap
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceEmbedded:
		return "embedded"
	default:
		return "bitmap"
	}
}

// Resolver hands out label faces at any size. It is safe for concurrent
// use; the faces it returns are not and belong to a single render.
type Resolver struct {
	font   *opentype.Font // nil means bitmap fallback
	source Source
	err    error
}

// NewResolver parses the font at path. On any failure it falls back to the
// embedded Go Regular font, and from there to a fixed-size bitmap face.
func NewResolver(path string) *Resolver {
	r := &Resolver{}

	if path != "" {
		f, err := parseFile(path)
		if err == nil {
			r.font = f
			r.source = SourceFile
			return r
		}
		r.err = fmt.Errorf("%w: %s: %v", ErrFontUnavailable, path, err)
	} else {
		r.err = fmt.Errorf("%w: no font path configured", ErrFontUnavailable)
	}

	if f, err := opentype.Parse(goregular.TTF); err == nil {
		r.font = f
		r.source = SourceEmbedded
		return r
	}

	r.source = SourceBitmap
	return r
}

func parseFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

// Err reports why the configured font was not used, or nil.
func (r *Resolver) Err() error {
	return r.err
}

// Source reports which font the resolver ended up with.
func (r *Resolver) Source() Source {
	return r.source
}

// Face returns a face at the given pixel size. It never fails; the bitmap
// fallback ignores size.
func (r *Resolver) Face(size float64) font.Face {
	if r.font != nil {
		face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// Width returns the advance width of s in whole pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
