// Package markup renders descriptors as SVG documents: a solid rectangle
// with a centered caption. It is the lightweight fallback renderer.
package markup

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/palette"
)

const captionStyle = "font-family:Arial, sans-serif;font-size:24px;fill:%s;text-anchor:middle;dominant-baseline:middle"

// Render writes d as an SVG document. The descriptor's strategy is ignored;
// every document is a filled rectangle with a caption.
func Render(w io.Writer, d manifest.Descriptor) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%s: invalid size %dx%d", d.Filename, d.Width, d.Height)
	}

	text := d.Label
	if text == "" {
		text = manifest.DefaultLabel
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(d.Width, d.Height)
	canvas.Title(d.Filename)
	canvas.Rect(0, 0, d.Width, d.Height, "fill:"+d.Color.Hex())
	canvas.Text(d.Width/2, d.Height/2, text, fmt.Sprintf(captionStyle, palette.DeepBurgundy.Hex()))
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("%s: writing svg: %w", d.Filename, ew.err)
	}
	return nil
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
