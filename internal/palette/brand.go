package palette

import "fmt"

// Brand colors.
var (
	Cream        = MustParseHex("#FAF7F0")
	Blush        = MustParseHex("#F5E6E8")
	RoseGold     = MustParseHex("#E8B4B8")
	Champagne    = MustParseHex("#F7E7CE")
	DeepBurgundy = MustParseHex("#8B2635")
	ForestGreen  = MustParseHex("#2D5016")
	WarmGray     = MustParseHex("#8B7B7A")
	White        = MustParseHex("#FFFFFF")
)

// SkinTone pairs a tone name with its swatch color.
type SkinTone struct {
	Name  string
	Color Color
}

// SkinTones lists the product skin-tone variants, lightest first.
var SkinTones = []SkinTone{
	{Name: "light", Color: MustParseHex("#F4D1B0")},
	{Name: "medium", Color: MustParseHex("#D4A574")},
	{Name: "olive", Color: MustParseHex("#C19B5A")},
	{Name: "deep", Color: MustParseHex("#8B5A42")},
	{Name: "dark", Color: MustParseHex("#5D3A29")},
}

var brand = map[string]Color{
	"cream":         Cream,
	"blush":         Blush,
	"rose_gold":     RoseGold,
	"champagne":     Champagne,
	"deep_burgundy": DeepBurgundy,
	"forest_green":  ForestGreen,
	"warm_gray":     WarmGray,
	"white":         White,
}

// Named looks up a brand color by its key, e.g. "rose_gold".
func Named(name string) (Color, error) {
	c, ok := brand[name]
	if !ok {
		return Color{}, fmt.Errorf("unknown brand color %q", name)
	}
	return c, nil
}

// Resolve accepts either a brand color key or a #RRGGBB string.
func Resolve(s string) (Color, error) {
	if c, ok := brand[s]; ok {
		return c, nil
	}
	return ParseHex(s)
}
