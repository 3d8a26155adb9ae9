package render

import (
	"image/color"
	"strconv"

	"github.com/tos-kamiya/trios/game"
)

// Rect is an axis-aligned rectangle in scene units.
type Rect struct {
	X, Y, W, H float64
}

type ItemKind int

const (
	FillRect ItemKind = iota
	StrokeRect
	Text
)

// Align positions a text item relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Item is one drawing operation. Rect is used by FillRect and StrokeRect; Text
// items draw Label with its top edge at Rect.Y, starting at Rect.X or centered
// on it.
type Item struct {
	Kind  ItemKind
	Rect  Rect
	Color color.RGBA
	Width float64 // stroke width
	Label string
	Size  float64 // text height
	Align Align
}

// Scene is a full frame in back-to-front order.
type Scene struct {
	Width, Height float64
	Background    color.RGBA
	Items         []Item
}

// Options controls the scene geometry.
type Options struct {
	Block float64 // cell edge length
	Ghost bool
}

// DefaultOptions matches a 30 unit cell without a ghost piece.
func DefaultOptions() Options {
	return Options{Block: 30}
}

// Metrics are the derived positions of the scene's parts.
type Metrics struct {
	Board       Rect
	PreviewTop  Rect // the piece after next
	PreviewLow  Rect // the next piece
	PreviewArea Rect
	InfoX       float64
	InfoY       float64
	LineHeight  float64
	TextSize    float64
	MessageSize float64
}

// Measure computes the layout for a snapshot.
func Measure(s game.Snapshot, opts Options) Metrics {
	b := opts.Block
	margin := b * 2 / 3
	pw, ph := b*20/3, b*10/3
	board := Rect{W: float64(s.Width) * b, H: float64(s.Height-s.HiddenRows) * b}
	px := board.W + margin

	return Metrics{
		Board:       board,
		PreviewTop:  Rect{X: px, Y: margin, W: pw, H: ph},
		PreviewLow:  Rect{X: px, Y: 2*margin + ph, W: pw, H: ph},
		PreviewArea: Rect{X: px, Y: margin, W: pw, H: 2*ph + margin},
		InfoX:       px,
		InfoY:       margin + 2*(ph+margin),
		LineHeight:  b * 4 / 3,
		TextSize:    b * 0.8,
		MessageSize: b * 0.95,
	}
}

// Size returns the scene's width and height: the board, the preview column
// and a right margin.
func Size(s game.Snapshot, opts Options) (float64, float64) {
	m := Measure(s, opts)
	return m.PreviewArea.X + m.PreviewArea.W + opts.Block*7/3, m.Board.H
}

// Build lays out a snapshot as a scene.
func Build(s game.Snapshot, opts Options) Scene {
	m := Measure(s, opts)
	b := opts.Block
	w, h := Size(s, opts)
	sc := Scene{Width: w, Height: h, Background: Background}

	cells := Cells(s, opts.Ghost)
	for r, row := range cells {
		for x, c := range row {
			cell := Rect{X: float64(x) * b, Y: float64(r) * b, W: b, H: b}
			switch c.Kind {
			case Empty:
			case Ghost:
				sc.stroke(inset(cell, 2), c.Color, 2)
			default:
				sc.fill(cell, c.Color)
			}
			sc.stroke(cell, GridLineColor, 1)
			if c.Kind == Piece {
				sc.stroke(cell, PieceBorder, 1)
			}
		}
	}
	sc.stroke(m.Board, StageBorder, 2)

	sc.preview(s.NextNext, m.PreviewTop, b)
	sc.preview(s.Next, m.PreviewLow, b)
	sc.stroke(m.PreviewArea, StageBorder, 2)

	for i, line := range Info(s) {
		sc.text(line, m.InfoX, m.InfoY+float64(i)*m.LineHeight, m.TextSize, AlignLeft)
	}

	if msg := Message(s); msg != nil {
		lh := m.MessageSize * 1.2
		top := (m.Board.H - lh*float64(len(msg))) / 2
		sc.fill(Rect{X: 0, Y: top - lh/2, W: m.Board.W, H: lh * float64(len(msg)+1)}, MessageBackdrop)
		for i, line := range msg {
			sc.text(line, m.Board.W/2, top+float64(i)*lh, m.MessageSize, AlignCenter)
		}
	}
	return sc
}

// preview centers a piece's offsets in box.
func (sc *Scene) preview(p game.PieceView, box Rect, b float64) {
	cx, cy := box.X+box.W/2, box.Y+box.H/2
	for _, o := range p.Offsets {
		cell := Rect{X: cx + float64(o.X)*b - b/2, Y: cy + float64(o.Y)*b - b/2, W: b, H: b}
		sc.fill(cell, p.Color)
		sc.stroke(cell, PieceBorder, 1)
	}
}

func (sc *Scene) fill(r Rect, c color.RGBA) {
	sc.Items = append(sc.Items, Item{Kind: FillRect, Rect: r, Color: c})
}

func (sc *Scene) stroke(r Rect, c color.RGBA, width float64) {
	sc.Items = append(sc.Items, Item{Kind: StrokeRect, Rect: r, Color: c, Width: width})
}

func (sc *Scene) text(label string, x, y, size float64, a Align) {
	sc.Items = append(sc.Items, Item{Kind: Text, Rect: Rect{X: x, Y: y}, Color: TextColor, Label: label, Size: size, Align: a})
}

func inset(r Rect, d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func itoa(n int) string { return strconv.Itoa(n) }
