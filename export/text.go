package export

import (
	"fmt"
	"strings"

	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/render"
)

var glyphs = map[render.CellKind]byte{
	render.Empty:  '.',
	render.Column: '.',
	render.Gap:    ':',
	render.Locked: '#',
	render.Piece:  '@',
	render.Ghost:  '+',
}

// Board returns the visible board, one line per row, framed by walls and a
// floor.
func Board(s game.Snapshot, ghost bool) string {
	var b strings.Builder
	for _, row := range render.Cells(s, ghost) {
		b.WriteByte('|')
		for _, c := range row {
			b.WriteByte(glyphs[c.Kind])
		}
		b.WriteString("|\n")
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", s.Width))
	b.WriteString("+\n")
	return b.String()
}

// Text returns the board followed by the status lines and the preview queue.
func Text(s game.Snapshot) string {
	var b strings.Builder
	b.WriteString(Board(s, false))
	for _, line := range render.Info(s) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Next: %s, then %s\n", s.Next.Name, s.NextNext.Name)
	for _, line := range render.Message(s) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
