// Package render turns a game snapshot into a resolution-independent scene:
// classified board cells, filled and stroked rectangles, and text lines. Front
// ends and exporters draw the scene with their own graphics library.
package render

import (
	"image/color"

	"github.com/tos-kamiya/trios/game"
)

var (
	Background      = color.RGBA{250, 250, 250, 255}
	GridLineColor   = color.RGBA{200, 200, 200, 255}
	PieceBorder     = color.RGBA{60, 60, 60, 255}
	TextColor       = color.RGBA{60, 60, 60, 255}
	StageBorder     = color.RGBA{0, 0, 0, 255}
	GapFillColor    = color.RGBA{90, 90, 90, 255}
	FallingColumn   = color.RGBA{240, 240, 240, 255}
	GhostLineColor  = color.RGBA{150, 150, 150, 255}
	MessageBackdrop = color.RGBA{250, 250, 250, 200}
)

// CellKind classifies one visible board cell for drawing. Column, Gap and
// Ghost cells hold no block: Column cells lie in a column the falling piece
// covers, Gap cells are at or below the topmost block of their column, and
// Ghost cells are where a hard drop would put the piece.
type CellKind int

const (
	Empty CellKind = iota
	Column
	Gap
	Locked
	Piece
	Ghost
)

// CellView is a classified cell with the color it should be drawn in.
type CellView struct {
	Kind  CellKind
	Color color.RGBA
}

// Cells classifies every visible cell. Row 0 of the result is the first
// visible row. The falling piece is drawn over everything else; the ghost
// only appears on empty cells when ghost is set.
func Cells(s game.Snapshot, ghost bool) [][]CellView {
	rows := s.Height - s.HiddenRows
	out := make([][]CellView, rows)
	tops := s.ColumnTops()
	cols := s.PieceColumns()

	for r := range out {
		y := r + s.HiddenRows
		out[r] = make([]CellView, s.Width)
		for x := range out[r] {
			cell := s.At(x, y)
			switch {
			case cell.Filled:
				out[r][x] = CellView{Kind: Locked, Color: cell.Color}
			case tops[x] >= 0 && y >= tops[x]:
				out[r][x] = CellView{Kind: Gap, Color: GapFillColor}
			case cols[x]:
				out[r][x] = CellView{Kind: Column, Color: FallingColumn}
			default:
				out[r][x] = CellView{Kind: Empty, Color: Background}
			}
		}
	}

	if ghost {
		for _, p := range s.Ghost {
			r := p.Y - s.HiddenRows
			if r < 0 || r >= rows || p.X < 0 || p.X >= s.Width {
				continue
			}
			if k := out[r][p.X].Kind; k == Empty || k == Column {
				out[r][p.X] = CellView{Kind: Ghost, Color: s.Current.Color}
			}
		}
	}

	for _, p := range s.Current.Cells {
		r := p.Y - s.HiddenRows
		if r < 0 || r >= rows || p.X < 0 || p.X >= s.Width {
			continue
		}
		out[r][p.X] = CellView{Kind: Piece, Color: s.Current.Color}
	}
	return out
}

// Info returns the status lines shown beside the board.
func Info(s game.Snapshot) []string {
	return []string{
		"Score: " + itoa(s.Score),
		"Stage: " + itoa(s.Stage),
		"Lines remaining: " + itoa(s.LinesRemaining),
	}
}

// Message returns the lines shown over the board for the current state, or
// nil while the game is running.
func Message(s game.Snapshot) []string {
	switch s.State {
	case game.Paused:
		return []string{"Paused"}
	case game.StageClear:
		return []string{"Stage " + itoa(s.Stage-1) + " Clear!", "Press any key", "to continue."}
	case game.GameOver:
		return []string{"Game Over.", "Final Score: " + itoa(s.FinalScore), "Press ESC to exit."}
	}
	return nil
}
