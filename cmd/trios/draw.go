package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tos-kamiya/trios/render"
)

// The debug font is a fixed 6x16 pixel grid.
const (
	glyphWidth  = 6
	glyphHeight = 16
	maxLabels   = 64
)

// painter draws scenes with vector shapes and the debug font. Each label is
// printed once into its own image and tinted when drawn; the debug font only
// prints in white.
type painter struct {
	labels map[string]*ebiten.Image
}

func newPainter() *painter {
	return &painter{labels: make(map[string]*ebiten.Image)}
}

func (p *painter) label(s string) *ebiten.Image {
	if img, ok := p.labels[s]; ok {
		return img
	}
	if len(p.labels) >= maxLabels {
		for k, img := range p.labels {
			img.Deallocate()
			delete(p.labels, k)
		}
	}
	img := ebiten.NewImage(len(s)*glyphWidth+1, glyphHeight)
	ebitenutil.DebugPrint(img, s)
	p.labels[s] = img
	return img
}

func (p *painter) draw(dst *ebiten.Image, sc render.Scene) {
	dst.Fill(sc.Background)

	for _, it := range sc.Items {
		x, y := float32(it.Rect.X), float32(it.Rect.Y)
		w, h := float32(it.Rect.W), float32(it.Rect.H)

		switch it.Kind {
		case render.FillRect:
			vector.DrawFilledRect(dst, x, y, w, h, it.Color, false)
		case render.StrokeRect:
			vector.StrokeRect(dst, x, y, w, h, float32(it.Width), it.Color, false)
		case render.Text:
			img := p.label(it.Label)
			// Scale the font up to the scene's text size, in whole steps.
			k := max(1, float64(int(it.Size/glyphHeight+0.5)))
			tw := float64(img.Bounds().Dx()) * k

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(k, k)
			tx := it.Rect.X
			if it.Align == render.AlignCenter {
				tx -= tw / 2
			}
			op.GeoM.Translate(tx, it.Rect.Y)
			op.ColorScale.ScaleWithColor(it.Color)
			dst.DrawImage(img, op)
		}
	}
}
