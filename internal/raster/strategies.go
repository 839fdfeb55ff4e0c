package raster

import (
	"fmt"
	"image"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/palette"
	"github.com/bagtoad/assetgen/internal/typeface"
)

// Label sizes and placement per strategy.
const (
	productLabelSize   = 24
	productLabelOffset = 50 // from the bottom edge
	lifestyleLabelSize = 36
	shapeCaptionSize   = 18
	shapeCaptionOffset = 30 // from the bottom edge
	minimalCaptionSize = 24

	dotStride  = 50
	dotModulus = 100
	dotSize    = 10

	backingOpacity = 200.0 / 255.0
)

// nailOffsets places thumb, index, middle, ring and pinky relative to the
// canvas center.
var nailOffsets = [5]image.Point{
	{-80, -20},
	{-40, -40},
	{0, -45},
	{40, -35},
	{70, -15},
}

// fingerOffsets places the four stylized customer fingers.
var fingerOffsets = [4]image.Point{
	{-25, -15},
	{-8, -25},
	{8, -25},
	{25, -15},
}

// drawGradient fills each row with the interpolation between Color and
// Secondary. The first row is exactly Color and the last exactly Secondary.
func drawGradient(d manifest.Descriptor, _ *typeface.Resolver) (*image.NRGBA, error) {
	img := newCanvas(d.Width, d.Height, d.Color)
	if d.Height < 2 {
		return img, nil
	}
	last := float64(d.Height - 1)
	for y := 0; y < d.Height; y++ {
		c := palette.Lerp(d.Color, d.Secondary, float64(y)/last).NRGBA(0xff)
		row := img.Pix[y*img.Stride : y*img.Stride+d.Width*4]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
		}
	}
	return img, nil
}

// drawProduct draws five nails on a cream background with a caption near
// the bottom edge.
func drawProduct(d manifest.Descriptor, fonts *typeface.Resolver) (*image.NRGBA, error) {
	img := newCanvas(d.Width, d.Height, palette.Cream)
	cx, cy := d.Width/2, d.Height/2

	for _, o := range nailOffsets {
		x, y := float32(cx+o.X), float32(cy+o.Y)
		outlinedEllipse(img, x-8, y-15, x+8, y+15, d.Color, palette.DeepBurgundy)
	}

	text := d.Label
	if text == "" {
		text = manifest.DefaultLabel
	}
	l := newLabel(fonts, productLabelSize, text)
	defer l.close()
	l.draw(img, l.centerX(d.Width), d.Height-productLabelOffset, palette.DeepBurgundy)

	return img, nil
}

// drawLifestyle stamps a sparse dot grid and, when labelled, a centered
// caption over a translucent white backing.
func drawLifestyle(d manifest.Descriptor, fonts *typeface.Resolver) (*image.NRGBA, error) {
	img := newCanvas(d.Width, d.Height, d.Color)

	for i := 0; i < d.Width; i += dotStride {
		for j := 0; j < d.Height; j += dotStride {
			if (i+j)%dotModulus == 0 {
				fillEllipse(img, float32(i), float32(j), float32(i+dotSize), float32(j+dotSize), palette.White)
			}
		}
	}

	if d.Label == "" {
		return img, nil
	}

	l := newLabel(fonts, lifestyleLabelSize, d.Label)
	defer l.close()
	x, y := l.centerX(d.Width), d.Height/2
	img = overlayRect(img, x-20, y-20, x+l.width+20, y+60, palette.White, backingOpacity)
	l.draw(img, x, y, palette.DeepBurgundy)

	return img, nil
}

// drawCustomer draws a stylized four-finger hand with rose-gold nails.
func drawCustomer(d manifest.Descriptor, _ *typeface.Resolver) (*image.NRGBA, error) {
	img := newCanvas(d.Width, d.Height, d.Color)
	cx, cy := float32(d.Width/2), float32(d.Height/2)

	fillEllipse(img, cx-40, cy-20, cx+40, cy+60, palette.Champagne)

	for _, o := range fingerOffsets {
		x, y := cx+float32(o.X), cy+float32(o.Y)
		fillEllipse(img, x-6, y-20, x+6, y+10, palette.Champagne)
		fillEllipse(img, x-4, y-18, x+4, y-8, palette.RoseGold)
	}

	return img, nil
}

// drawShapeGuide draws one rose-gold nail shape with its name underneath.
// Unknown shapes are an error rather than a blank guide.
func drawShapeGuide(d manifest.Descriptor, fonts *typeface.Resolver) (*image.NRGBA, error) {
	if !d.Shape.Valid() {
		return nil, fmt.Errorf("%s: %w: %v", d.Filename, manifest.ErrUnknownShape, d.Shape)
	}

	img := newCanvas(d.Width, d.Height, d.Color)
	cx, cy := d.Width/2, d.Height/2

	switch d.Shape {
	case manifest.Square:
		fillRect(img, cx-20, cy-30, cx+20, cy+30, palette.RoseGold)
	case manifest.Oval:
		fillEllipse(img, float32(cx-20), float32(cy-30), float32(cx+20), float32(cy+30), palette.RoseGold)
	case manifest.Almond:
		fillPolygon(img, []image.Point{
			{cx, cy - 30}, {cx + 15, cy - 15},
			{cx + 20, cy + 15}, {cx, cy + 30},
			{cx - 20, cy + 15}, {cx - 15, cy - 15},
		}, palette.RoseGold)
	case manifest.Coffin:
		fillPolygon(img, []image.Point{
			{cx, cy - 30}, {cx + 12, cy - 15},
			{cx + 12, cy + 15}, {cx + 8, cy + 30},
			{cx - 8, cy + 30}, {cx - 12, cy + 15},
			{cx - 12, cy - 15},
		}, palette.RoseGold)
	}

	l := newLabel(fonts, shapeCaptionSize, d.Shape.Caption())
	defer l.close()
	l.draw(img, l.centerX(d.Width), d.Height-shapeCaptionOffset, palette.DeepBurgundy)

	return img, nil
}

// drawMinimal fills the canvas and centers a caption in both directions.
func drawMinimal(d manifest.Descriptor, fonts *typeface.Resolver) (*image.NRGBA, error) {
	img := newCanvas(d.Width, d.Height, d.Color)

	text := d.Label
	if text == "" {
		text = manifest.DefaultLabel
	}
	l := newLabel(fonts, minimalCaptionSize, text)
	defer l.close()
	m := l.face.Metrics()
	lineHeight := (m.Ascent + m.Descent).Ceil()
	l.draw(img, l.centerX(d.Width), (d.Height-lineHeight)/2, palette.DeepBurgundy)

	return img, nil
}
