package manifest

import (
	"fmt"
	"strings"

	"github.com/bagtoad/assetgen/internal/palette"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLabel is the caption used by product and minimal renders when a
// descriptor has no label of its own.
const DefaultLabel = "STICKLS"

// Default returns the complete STICKLS placeholder manifest.
func Default() Manifest {
	var ds []Descriptor
	add := func(d Descriptor) { ds = append(ds, d) }

	gradient := func(file string, w, h int) Descriptor {
		return Descriptor{Filename: file, Width: w, Height: h, Color: palette.Cream, Secondary: palette.Blush, Strategy: Gradient}
	}
	product := func(file string, w, h int, c palette.Color, label string) Descriptor {
		return Descriptor{Filename: file, Width: w, Height: h, Color: c, Label: label, Strategy: Product}
	}
	lifestyle := func(file string, w, h int, c palette.Color, label string) Descriptor {
		return Descriptor{Filename: file, Width: w, Height: h, Color: c, Label: label, Strategy: Lifestyle}
	}
	customer := func(file string, size int) Descriptor {
		return Descriptor{Filename: file, Width: size, Height: size, Color: palette.Blush, Strategy: Customer}
	}

	// Hero
	add(gradient("hero-desktop.jpg", 1200, 800))
	add(gradient("hero-mobile.jpg", 800, 600))

	// Menu preview
	add(product("menu-preview.jpg", 300, 200, palette.RoseGold, "New Collection"))

	// Collections
	add(lifestyle("collection-classic.jpg", 400, 500, palette.Champagne, "Classic"))
	add(lifestyle("collection-trend.jpg", 400, 500, palette.RoseGold, "Trending"))
	add(lifestyle("collection-occasion.jpg", 400, 500, palette.DeepBurgundy, "Occasion"))
	add(lifestyle("collection-seasonal.jpg", 400, 500, palette.ForestGreen, "Seasonal"))

	add(product("tutorial-preview.jpg", 600, 400, palette.RoseGold, "Tutorial"))
	add(lifestyle("sustainability-visual.jpg", 500, 400, palette.ForestGreen, "ECO"))

	// Customer gallery, Instagram feed, reviewer avatars
	for i := 1; i <= 6; i++ {
		add(customer(fmt.Sprintf("customer-%d.jpg", i), 250))
	}
	for i := 1; i <= 6; i++ {
		add(customer(fmt.Sprintf("insta-%d.jpg", i), 200))
	}
	for i := 1; i <= 3; i++ {
		add(customer(fmt.Sprintf("reviewer-%d.jpg", i), 80))
	}

	for _, s := range Shapes() {
		add(Descriptor{
			Filename: fmt.Sprintf("shape-%s.jpg", s),
			Width:    200,
			Height:   250,
			Color:    palette.White,
			Strategy: ShapeGuide,
			Shape:    s,
		})
	}

	add(lifestyle("nail-measurement-guide.jpg", 400, 300, palette.Cream, "Size Guide"))

	// Rose Gold Elegance product page
	add(product("product-rose-gold-main.jpg", 600, 600, palette.RoseGold, DefaultLabel))
	add(product("product-rose-gold-hand.jpg", 600, 600, palette.RoseGold, "On Hand"))
	add(product("product-rose-gold-close.jpg", 600, 600, palette.RoseGold, "Close Up"))
	add(product("product-rose-gold-packaging.jpg", 400, 300, palette.Champagne, "Packaging"))
	add(lifestyle("product-rose-gold-lifestyle.jpg", 600, 400, palette.Cream, "Lifestyle"))

	for _, tone := range palette.SkinTones {
		add(product(fmt.Sprintf("product-rose-gold-%s.jpg", tone.Name), 600, 600, tone.Color, titleWord(tone.Name)+" Skin"))
	}

	// What's included
	for _, item := range []string{"nails", "tabs", "glue", "file", "prep", "instructions"} {
		add(lifestyle(fmt.Sprintf("included-%s.jpg", item), 100, 100, palette.Cream, titleWord(item)))
	}

	add(lifestyle("tutorial-video-thumbnail.jpg", 400, 225, palette.Blush, "▶ Tutorial"))

	// Related products
	related := []struct {
		color palette.Color
		name  string
	}{
		{palette.Champagne, "Champagne Dreams"},
		{palette.DeepBurgundy, "Burgundy Passion"},
		{palette.Champagne, "Nude Perfection"},
		{palette.DeepBurgundy, "Midnight Glam"},
	}
	for _, p := range related {
		slug := strings.ReplaceAll(strings.ToLower(p.name), " ", "-")
		add(product(fmt.Sprintf("product-%s.jpg", slug), 300, 300, p.color, p.name))
	}

	return New(ds...)
}

// Fallback returns the lightweight manifest rendered as solid rectangles
// with a centered caption. Sizes and colors differ from Default in places.
func Fallback() Manifest {
	var ds []Descriptor
	add := func(file string, w, h int, hex string) {
		ds = append(ds, Descriptor{
			Filename: file,
			Width:    w,
			Height:   h,
			Color:    palette.MustParseHex(hex),
			Strategy: Minimal,
		})
	}

	add("hero-desktop.jpg", 1200, 600, "#FAF7F0")
	add("hero-mobile.jpg", 800, 400, "#FAF7F0")
	add("menu-preview.jpg", 300, 200, "#E8B4B8")
	add("collection-classic.jpg", 400, 500, "#F7E7CE")
	add("collection-trend.jpg", 400, 500, "#E8B4B8")
	add("collection-occasion.jpg", 400, 500, "#8B2635")
	add("collection-seasonal.jpg", 400, 500, "#2D5016")
	add("tutorial-preview.jpg", 600, 400, "#F5E6E8")
	add("sustainability-visual.jpg", 500, 400, "#2D5016")
	add("product-rose-gold-main.jpg", 600, 600, "#E8B4B8")
	add("product-rose-gold-hand.jpg", 600, 600, "#F5E6E8")
	add("product-rose-gold-close.jpg", 600, 600, "#E8B4B8")
	add("product-rose-gold-packaging.jpg", 400, 300, "#FAF7F0")
	add("product-rose-gold-lifestyle.jpg", 600, 400, "#F5E6E8")
	add("nail-measurement-guide.jpg", 400, 300, "#FAF7F0")
	add("tutorial-video-thumbnail.jpg", 400, 225, "#F5E6E8")

	for i := 1; i <= 6; i++ {
		add(fmt.Sprintf("customer-%d.jpg", i), 250, 250, "#F5E6E8")
	}
	for i := 1; i <= 6; i++ {
		add(fmt.Sprintf("insta-%d.jpg", i), 200, 200, "#E8B4B8")
	}
	for i := 1; i <= 3; i++ {
		add(fmt.Sprintf("reviewer-%d.jpg", i), 80, 80, "#F7E7CE")
	}
	for _, s := range Shapes() {
		add(fmt.Sprintf("shape-%s.jpg", s), 200, 250, "#FFFFFF")
	}
	for _, tone := range palette.SkinTones {
		add(fmt.Sprintf("product-rose-gold-%s.jpg", tone.Name), 600, 600, "#E8B4B8")
	}
	for _, item := range []string{"nails", "tabs", "glue", "file", "prep", "instructions"} {
		add(fmt.Sprintf("included-%s.jpg", item), 100, 100, "#FAF7F0")
	}
	for _, p := range []string{"champagne-dreams", "burgundy-passion", "nude-perfection", "midnight-glam"} {
		add(fmt.Sprintf("product-%s.jpg", p), 300, 300, "#E8B4B8")
	}

	return New(ds...)
}

// titleWord title-cases s, e.g. "medium" becomes "Medium". A Caser is
// stateful, so each call gets its own.
func titleWord(s string) string {
	return cases.Title(language.English).String(s)
}
