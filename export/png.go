// Package export writes snapshots out of the game: as PNG images drawn with
// gg, and as plain text boards for logs and the clipboard.
package export

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Painter draws scenes with gg. Font faces are parsed once and cached per
// size, so one Painter can export many frames.
type Painter struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewPainter() (*Painter, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Painter{font: f, faces: make(map[float64]font.Face)}, nil
}

func (p *Painter) face(size float64) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(p.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[size] = f
	return f
}

// Paint draws sc into a new context.
func (p *Painter) Paint(sc render.Scene) *gg.Context {
	dc := gg.NewContext(int(sc.Width), int(sc.Height))
	dc.SetColor(sc.Background)
	dc.Clear()

	for _, it := range sc.Items {
		r := it.Rect
		switch it.Kind {
		case render.FillRect:
			dc.SetColor(it.Color)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Fill()
		case render.StrokeRect:
			dc.SetColor(it.Color)
			dc.SetLineWidth(it.Width)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Stroke()
		case render.Text:
			dc.SetColor(it.Color)
			dc.SetFontFace(p.face(it.Size))
			ax := 0.0
			if it.Align == render.AlignCenter {
				ax = 0.5
			}
			dc.DrawStringAnchored(it.Label, r.X, r.Y, ax, 1)
		}
	}
	return dc
}

// Image renders a snapshot.
func (p *Painter) Image(s game.Snapshot, opts render.Options) image.Image {
	return p.Paint(render.Build(s, opts)).Image()
}

// SavePNG renders a snapshot and writes it to path.
func (p *Painter) SavePNG(s game.Snapshot, opts render.Options, path string) error {
	return p.Paint(render.Build(s, opts)).SavePNG(path)
}

// ShotPath returns a file name in dir for a screenshot taken at t.
func ShotPath(dir string, t time.Time) string {
	return filepath.Join(dir, "trios-"+t.Format("20060102-150405.000")+".png")
}
