package game

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidShape is returned when a shape definition cannot form a triomino.
var ErrInvalidShape = errors.New("invalid shape")

// Point is a cell coordinate or an offset from a pivot. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ShapeDef describes a shape before validation.
type ShapeDef struct {
	Name    string
	Offsets []Point
	Color   color.RGBA
	Weight  int
}

// Shape is a validated, immutable piece template.
type Shape struct {
	name    string
	offsets [3]Point
	color   color.RGBA
	weight  int
}

func (s *Shape) Name() string      { return s.name }
func (s *Shape) Offsets() [3]Point { return s.offsets }
func (s *Shape) Color() color.RGBA { return s.color }
func (s *Shape) BaseWeight() int   { return s.weight }
func (s *Shape) String() string    { return s.name }

// Catalog is the read-only registry of shapes, shared by every engine.
type Catalog struct {
	shapes []*Shape
	byName map[string]*Shape
}

// DefaultShapes returns the six triomino templates.
func DefaultShapes() []ShapeDef {
	return []ShapeDef{
		{Name: "I", Offsets: []Point{{-1, 0}, {0, 0}, {1, 0}}, Color: color.RGBA{100, 240, 255, 255}, Weight: 15},
		{Name: "slash", Offsets: []Point{{-1, -1}, {0, 0}, {1, 1}}, Color: color.RGBA{255, 100, 150, 255}, Weight: 5},
		{Name: "L", Offsets: []Point{{0, -1}, {0, 0}, {1, 0}}, Color: color.RGBA{255, 160, 60, 255}, Weight: 15},
		{Name: "j", Offsets: []Point{{0, -1}, {0, 0}, {-1, 1}}, Color: color.RGBA{100, 255, 100, 255}, Weight: 15},
		{Name: "shi", Offsets: []Point{{0, -1}, {0, 0}, {1, 1}}, Color: color.RGBA{70, 150, 230, 255}, Weight: 15},
		{Name: "v", Offsets: []Point{{-1, 0}, {1, 0}, {0, 1}}, Color: color.RGBA{255, 230, 0, 255}, Weight: 5},
	}
}

// NewCatalog validates the definitions and builds a catalog from them.
func NewCatalog(defs []ShapeDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidShape)
	}

	c := &Catalog{
		shapes: make([]*Shape, 0, len(defs)),
		byName: make(map[string]*Shape, len(defs)),
	}

	for i, def := range defs {
		if err := validateShape(def); err != nil {
			return nil, fmt.Errorf("shape %d (%q): %w", i, def.Name, err)
		}
		if _, dup := c.byName[def.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidShape, def.Name)
		}

		s := &Shape{name: def.Name, color: def.Color, weight: def.Weight}
		copy(s.offsets[:], def.Offsets)
		c.shapes = append(c.shapes, s)
		c.byName[def.Name] = s
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid definitions.
func MustCatalog(defs []ShapeDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

func validateShape(def ShapeDef) error {
	if def.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidShape)
	}
	if len(def.Offsets) != 3 {
		return fmt.Errorf("%w: want 3 offsets, got %d", ErrInvalidShape, len(def.Offsets))
	}
	if def.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %d", ErrInvalidShape, def.Weight)
	}

	seen := make(map[Point]bool, 3)
	for _, o := range def.Offsets {
		if seen[o] {
			return fmt.Errorf("%w: duplicate offset %v", ErrInvalidShape, o)
		}
		seen[o] = true
	}

	// Cells touching by edge or corner count as connected.
	reached := map[Point]bool{def.Offsets[0]: true}
	stack := []Point{def.Offsets[0]}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range def.Offsets {
			if reached[q] || abs(p.X-q.X) > 1 || abs(p.Y-q.Y) > 1 {
				continue
			}
			reached[q] = true
			stack = append(stack, q)
		}
	}
	if len(reached) != 3 {
		return fmt.Errorf("%w: offsets are not connected", ErrInvalidShape)
	}

	return nil
}

// Len returns the number of shapes
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// At returns the shape at index i in definition order.
func (c *Catalog) At(i int) *Shape {
	return c.shapes[i]
}

// Lookup returns the shape with the given name.
func (c *Catalog) Lookup(name string) (*Shape, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Shapes returns the shapes in definition order.
func (c *Catalog) Shapes() []*Shape {
	out := make([]*Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
