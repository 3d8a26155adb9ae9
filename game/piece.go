package game

import "image/color"

// Piece is a falling triomino. X and Y are the pivot position; callers move the
// piece by changing them once the destination has been validated.
type Piece struct {
	X, Y    int
	shape   *Shape
	offsets [3]Point
}

// NewPiece creates a piece of the given shape with its pivot at (x, y).
func NewPiece(shape *Shape, x, y int) *Piece {
	return &Piece{
		X:       x,
		Y:       y,
		shape:   shape,
		offsets: shape.offsets,
	}
}

func (p Piece) Shape() *Shape     { return p.shape }
func (p Piece) Color() color.RGBA { return p.shape.color }
func (p Piece) Offsets() [3]Point { return p.offsets }

// Cells returns the absolute grid positions of the piece.
func (p Piece) Cells() [3]Point {
	return p.Translated(0, 0)
}

// Translated returns the absolute cells the piece would occupy after moving by (dx, dy).
func (p Piece) Translated(dx, dy int) [3]Point {
	var cells [3]Point
	for i, o := range p.offsets {
		cells[i] = Point{X: p.X + dx + o.X, Y: p.Y + dy + o.Y}
	}
	return cells
}

// Rotated returns the offsets after a 90° clockwise turn about the pivot.
// The piece itself is left untouched.
func (p Piece) Rotated() [3]Point {
	var out [3]Point
	for i, o := range p.offsets {
		out[i] = Point{X: o.Y, Y: -o.X}
	}
	return out
}

// CellsWith returns the absolute cells for an arbitrary offset set at the current pivot.
func (p Piece) CellsWith(offsets [3]Point) [3]Point {
	var cells [3]Point
	for i, o := range offsets {
		cells[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// CommitRotation replaces the current offsets. Legality is the caller's concern.
func (p *Piece) CommitRotation(offsets [3]Point) {
	p.offsets = offsets
}
