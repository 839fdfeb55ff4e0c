// Package raster draws the placeholder strategies into in-memory images.
package raster

import (
	"fmt"
	"image"

	"github.com/bagtoad/assetgen/internal/manifest"
	"github.com/bagtoad/assetgen/internal/typeface"
)

// Func draws one descriptor. Implementations are pure given their inputs.
type Func func(manifest.Descriptor, *typeface.Resolver) (*image.NRGBA, error)

// For returns the drawing function of a strategy.
func For(s manifest.Strategy) (Func, error) {
	switch s {
	case manifest.Gradient:
		return drawGradient, nil
	case manifest.Product:
		return drawProduct, nil
	case manifest.Lifestyle:
		return drawLifestyle, nil
	case manifest.Customer:
		return drawCustomer, nil
	case manifest.ShapeGuide:
		return drawShapeGuide, nil
	case manifest.Minimal:
		return drawMinimal, nil
	}
	return nil, fmt.Errorf("%w: %v", manifest.ErrUnknownStrategy, s)
}

// Render draws d with its strategy.
func Render(d manifest.Descriptor, fonts *typeface.Resolver) (*image.NRGBA, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%s: invalid size %dx%d", d.Filename, d.Width, d.Height)
	}
	fn, err := For(d.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Filename, err)
	}
	return fn(d, fonts)
}
