package manifest

import (
	"fmt"
	"os"

	"github.com/bagtoad/assetgen/internal/palette"
	"gopkg.in/yaml.v3"
)

// fileEntry is one asset as written in a manifest file.
type fileEntry struct {
	File      string `yaml:"file"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Color     string `yaml:"color"`
	Secondary string `yaml:"secondary"`
	Label     string `yaml:"label"`
	Strategy  string `yaml:"strategy"`
	Shape     string `yaml:"shape"`
}

type fileManifest struct {
	Assets []fileEntry `yaml:"assets"`
}

// Load reads a YAML manifest file. Colors may be #RRGGBB strings or brand
// color keys such as rose_gold.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("cannot read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML manifest document and validates it.
func Parse(data []byte) (Manifest, error) {
	var fm fileManifest
	if err := yaml.Unmarshal(data, &fm); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	ds := make([]Descriptor, 0, len(fm.Assets))
	for i, e := range fm.Assets {
		d, err := e.descriptor()
		if err != nil {
			return Manifest{}, fmt.Errorf("asset %d (%s): %w", i, e.File, err)
		}
		ds = append(ds, d)
	}

	m := New(ds...)
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (e fileEntry) descriptor() (Descriptor, error) {
	strategy := Lifestyle
	if e.Strategy != "" {
		s, err := ParseStrategy(e.Strategy)
		if err != nil {
			return Descriptor{}, err
		}
		strategy = s
	}

	c := palette.White
	if e.Color != "" {
		parsed, err := palette.Resolve(e.Color)
		if err != nil {
			return Descriptor{}, fmt.Errorf("color: %w", err)
		}
		c = parsed
	}

	secondary := palette.Blush
	if e.Secondary != "" {
		parsed, err := palette.Resolve(e.Secondary)
		if err != nil {
			return Descriptor{}, fmt.Errorf("secondary: %w", err)
		}
		secondary = parsed
	}

	shape := NoShape
	if e.Shape != "" {
		s, err := ParseShape(e.Shape)
		if err != nil {
			return Descriptor{}, err
		}
		shape = s
	}

	return Descriptor{
		Filename:  e.File,
		Width:     e.Width,
		Height:    e.Height,
		Color:     c,
		Secondary: secondary,
		Label:     e.Label,
		Strategy:  strategy,
		Shape:     shape,
	}, nil
}

// Resolve returns the manifest to render.
// Priority: manifest file (when path is set) > built-in default.
func Resolve(path string, fallback bool) (Manifest, error) {
	if path != "" {
		return Load(path)
	}
	if fallback {
		return Fallback(), nil
	}
	return Default(), nil
}
