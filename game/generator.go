package game

// Source is the random number source used to pick shapes. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Weights returns the effective spawn weight of every shape for a stage, in
// catalog order. Weights shrink by one per stage but never go below floor.
func Weights(c *Catalog, stage, floor int) []int {
	out := make([]int, c.Len())
	for i, s := range c.shapes {
		out[i] = max(s.weight-(stage-1), floor)
	}
	return out
}

// Choose picks a shape for the stage using src.
func Choose(c *Catalog, stage, floor int, src Source) *Shape {
	weights := Weights(c, stage, floor)

	total := 0
	for _, w := range weights {
		total += w
	}

	r := src.IntN(total)
	for i, w := range weights {
		if r < w {
			return c.shapes[i]
		}
		r -= w
	}
	return c.shapes[len(c.shapes)-1]
}

// Generator produces new pieces at the spawn pivot.
type Generator struct {
	catalog *Catalog
	src     Source
	floor   int
	spawn   Point
}

// NewGenerator creates a generator drawing from catalog with src.
func NewGenerator(catalog *Catalog, src Source, floor int, spawn Point) *Generator {
	return &Generator{
		catalog: catalog,
		src:     src,
		floor:   floor,
		spawn:   spawn,
	}
}

// Next returns a new piece chosen with the stage's weights.
func (g *Generator) Next(stage int) *Piece {
	return NewPiece(Choose(g.catalog, stage, g.floor, g.src), g.spawn.X, g.spawn.Y)
}
