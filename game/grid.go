package game

import "image/color"

// Cell is either empty or holds the color of the piece that locked into it.
type Cell struct {
	Color  color.RGBA
	Filled bool
}

// Grid is a fixed-size matrix of cells indexed [row][column]. Row 0 is the top.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range g.rows {
		g.rows[y] = make([]Cell, width)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x, y). Positions outside the matrix read as empty.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{}
	}
	return g.rows[y][x]
}

// Filled reports whether (x, y) is inside the matrix and occupied.
func (g *Grid) Filled(x, y int) bool {
	return g.At(x, y).Filled
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsLegal reports whether a piece may occupy cells. Columns must be inside the
// grid and rows above the floor; cells above the top row (y < 0) are always
// allowed, any other cell must be empty.
func (g *Grid) IsLegal(cells []Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= g.width {
			return false
		}
		if c.Y >= g.height {
			return false
		}
		if c.Y >= 0 && g.rows[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// Lock marks cells as occupied with clr. Cells above the top row are lost.
func (g *Grid) Lock(cells []Point, clr color.RGBA) {
	for _, c := range cells {
		if !g.inBounds(c.X, c.Y) {
			continue
		}
		g.rows[c.Y][c.X] = Cell{Color: clr, Filled: true}
	}
}

// ClearFullRows returns a grid with every full row removed and the same number of
// empty rows added at the top, along with the number of rows removed. The
// remaining rows keep their order. The receiver is not modified.
func (g *Grid) ClearFullRows() (*Grid, int) {
	kept := make([][]Cell, 0, g.height)
	for _, row := range g.rows {
		if !rowFull(row) {
			kept = append(kept, cloneRow(row))
		}
	}

	cleared := g.height - len(kept)
	next := &Grid{
		width:  g.width,
		height: g.height,
		rows:   make([][]Cell, 0, g.height),
	}
	for range cleared {
		next.rows = append(next.rows, make([]Cell, g.width))
	}
	next.rows = append(next.rows, kept...)

	return next, cleared
}

// FullRows returns the indices of rows without an empty cell, top to bottom.
func (g *Grid) FullRows() []int {
	var full []int
	for y, row := range g.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}
	return full
}

// Rows returns a deep copy of the cell matrix.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, len(g.rows))
	for y, row := range g.rows {
		out[y] = cloneRow(row)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		rows:   g.Rows(),
	}
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

func cloneRow(row []Cell) []Cell {
	out := make([]Cell, len(row))
	copy(out, row)
	return out
}
