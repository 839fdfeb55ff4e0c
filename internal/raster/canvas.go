package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/bagtoad/assetgen/internal/typeface"
)

// Bezier control-point factor for a quarter ellipse.
const kappa = 0.5522847498

// newCanvas returns a w x h canvas filled with bg.
func newCanvas(w, h int, bg color.Color) *image.NRGBA {
	return imaging.New(w, h, bg)
}

// fillRect fills the rectangle with inclusive corners (x0, y0) and (x1, y1).
func fillRect(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// fillEllipse fills the ellipse inscribed in the box (x0, y0)-(x1, y1).
func fillEllipse(dst draw.Image, x0, y0, x1, y1 float32, c color.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	ox, oy := rx*kappa, ry*kappa

	p := newPath(x0, y0, x1, y1)
	p.moveTo(cx+rx, cy)
	p.cubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.cubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.cubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.cubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.fill(dst, c)
}

// outlinedEllipse draws an ellipse filled with fill and a one pixel border
// in outline.
func outlinedEllipse(dst draw.Image, x0, y0, x1, y1 float32, fill, outline color.Color) {
	fillEllipse(dst, x0, y0, x1, y1, outline)
	fillEllipse(dst, x0+1, y0+1, x1-1, y1-1, fill)
}

// fillPolygon fills the closed polygon through pts.
func fillPolygon(dst draw.Image, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	bounds := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		bounds = bounds.Union(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
	}

	p := newPath(float32(bounds.Min.X), float32(bounds.Min.Y), float32(bounds.Max.X), float32(bounds.Max.Y))
	p.moveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.lineTo(float32(pt.X), float32(pt.Y))
	}
	p.fill(dst, c)
}

// path rasterizes a shape within its own bounding box so that small shapes
// on large canvases only touch the pixels they cover.
type path struct {
	z      *vector.Rasterizer
	r      image.Rectangle
	ox, oy float32
}

func newPath(x0, y0, x1, y1 float32) *path {
	r := image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1)))+1, int(math.Ceil(float64(y1)))+1,
	)
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	return &path{z: z, r: r, ox: float32(r.Min.X), oy: float32(r.Min.Y)}
}

func (p *path) moveTo(x, y float32) {
	p.z.MoveTo(x-p.ox, y-p.oy)
}

func (p *path) lineTo(x, y float32) {
	p.z.LineTo(x-p.ox, y-p.oy)
}

func (p *path) cubeTo(bx, by, cx, cy, dx, dy float32) {
	p.z.CubeTo(bx-p.ox, by-p.oy, cx-p.ox, cy-p.oy, dx-p.ox, dy-p.oy)
}

// fill closes the path and composites it onto dst. Pixels outside dst are
// dropped.
func (p *path) fill(dst draw.Image, c color.Color) {
	p.z.ClosePath()
	p.z.Draw(dst, p.r, image.NewUniform(c), image.Point{})
}

// overlayRect blends a rectangle of color c onto dst at the given opacity
// (0..1). Corners are inclusive and may fall outside the canvas.
func overlayRect(dst *image.NRGBA, x0, y0, x1, y1 int, c color.Color, opacity float64) *image.NRGBA {
	w, h := x1-x0+1, y1-y0+1
	if w <= 0 || h <= 0 {
		return dst
	}
	patch := imaging.New(w, h, c)
	return imaging.Overlay(dst, patch, image.Pt(x0, y0), opacity)
}

// label is a line of text laid out against a canvas.
type label struct {
	text  string
	face  font.Face
	width int
}

func newLabel(fonts *typeface.Resolver, size float64, text string) label {
	face := fonts.Face(size)
	return label{text: text, face: face, width: typeface.Width(face, text)}
}

// centerX returns the left edge that centers the label on a canvas of width w.
func (l label) centerX(w int) int {
	return (w - l.width) / 2
}

// draw renders the label with its top-left corner at (x, y).
func (l label) draw(dst draw.Image, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: l.face,
		Dot:  fixed.P(x, y+typeface.Ascent(l.face)),
	}
	d.DrawString(l.text)
}

func (l label) close() {
	_ = l.face.Close()
}
