// Package manifest defines the asset descriptors that drive generation.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bagtoad/assetgen/internal/palette"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Strategy selects the drawing procedure for a descriptor.
type Strategy int

const (
	Gradient Strategy = iota
	Product
	Lifestyle
	Customer
	ShapeGuide
	Minimal
)

var strategyNames = [...]string{
	Gradient:   "gradient",
	Product:    "product",
	Lifestyle:  "lifestyle",
	Customer:   "customer",
	ShapeGuide: "shape-guide",
	Minimal:    "minimal",
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Gradient, Product, Lifestyle, Customer, ShapeGuide, Minimal}
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range strategyNames {
		if sn == n {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Shape is a nail shape drawn by the shape-guide strategy.
type Shape int

const (
	NoShape Shape = iota
	Square
	Oval
	Almond
	Coffin
)

var shapeNames = [...]string{
	NoShape: "",
	Square:  "square",
	Oval:    "oval",
	Almond:  "almond",
	Coffin:  "coffin",
}

// Shapes lists the drawable shapes in guide order.
func Shapes() []Shape {
	return []Shape{Square, Oval, Almond, Coffin}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Caption is the title-cased shape name printed under a shape guide.
func (s Shape) Caption() string {
	return titleWord(s.String())
}

// Valid reports whether s names a drawable shape.
func (s Shape) Valid() bool {
	return s > NoShape && int(s) < len(shapeNames)
}

// ParseShape maps a shape name to its value.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range shapeNames {
		if i > 0 && sn == n {
			return Shape(i), nil
		}
	}
	return NoShape, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Descriptor specifies one output file.
type Descriptor struct {
	Filename  string
	Width     int
	Height    int
	Color     palette.Color
	Secondary palette.Color // gradient end color
	Label     string
	Strategy  Strategy
	Shape     Shape // shape-guide only
}

// Manifest is an ordered, read-only list of descriptors.
type Manifest struct {
	descriptors []Descriptor
}

// New builds a manifest from the given descriptors, in order.
func New(ds ...Descriptor) Manifest {
	return Manifest{descriptors: append([]Descriptor(nil), ds...)}
}

// Descriptors returns a copy of the manifest entries.
func (m Manifest) Descriptors() []Descriptor {
	return append([]Descriptor(nil), m.descriptors...)
}

// Len returns the number of descriptors.
func (m Manifest) Len() int {
	return len(m.descriptors)
}

// Filenames returns the manifest filenames in order.
func (m Manifest) Filenames() []string {
	names := make([]string, len(m.descriptors))
	for i, d := range m.descriptors {
		names[i] = d.Filename
	}
	return names
}

// Validate checks dimensions, strategies, shapes and that every filename is
// a unique, portable base name.
func (m Manifest) Validate() error {
	if len(m.descriptors) == 0 {
		return fmt.Errorf("%w: no assets", ErrInvalidManifest)
	}

	seen := make(map[string]int, len(m.descriptors))
	for i, d := range m.descriptors {
		if err := ValidFilename(d.Filename); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidManifest, i, err)
		}
		key := strings.ToLower(d.Filename)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: entry %d: filename %q already used by entry %d",
				ErrInvalidManifest, i, d.Filename, prev)
		}
		seen[key] = i

		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("%w: %s: dimensions must be positive, got %dx%d",
				ErrInvalidManifest, d.Filename, d.Width, d.Height)
		}
		if !d.Strategy.Valid() {
			return fmt.Errorf("%w: %s: %v", ErrInvalidManifest, d.Filename, d.Strategy)
		}
		if d.Strategy == ShapeGuide && !d.Shape.Valid() {
			return fmt.Errorf("%w: %s: shape guide needs a shape: %w", ErrInvalidManifest, d.Filename, ErrUnknownShape)
		}
	}
	return nil
}

// CheckTargets reports an ErrInvalidManifest when rename maps two entries
// to the same file name, compared case-insensitively.
func (m Manifest) CheckTargets(rename func(string) string) error {
	seen := make(map[string]int, len(m.descriptors))
	for i, d := range m.descriptors {
		target := rename(d.Filename)
		key := strings.ToLower(target)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s and %s are both written as %s",
				ErrInvalidManifest, m.descriptors[prev].Filename, d.Filename, target)
		}
		seen[key] = i
	}
	return nil
}

// ValidFilename reports whether name is usable as a plain file name on
// common filesystems.
func ValidFilename(name string) error {
	switch {
	case name == "":
		return errors.New("empty filename")
	case name == "." || name == "..":
		return fmt.Errorf("filename %q is reserved", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("filename %q is hidden", name)
	case strings.HasSuffix(name, " ") || strings.HasSuffix(name, "."):
		return fmt.Errorf("filename %q ends with a space or dot", name)
	case len(name) > 255:
		return fmt.Errorf("filename %q is too long", name)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(`/\<>:"|?*`, r) {
			return fmt.Errorf("filename %q contains invalid character %q", name, r)
		}
	}
	return nil
}
