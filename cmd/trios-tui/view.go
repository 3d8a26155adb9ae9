package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/render"
)

// Each board cell is two terminal columns wide.
const cellText = "  "

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

var textStyle = lipgloss.NewStyle().Foreground(hex(render.TextColor))

var frame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(hex(render.StageBorder))

var previewFrame = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(hex(render.GridLineColor)).
	Padding(0, 1)

var messageStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(hex(render.TextColor)).
	Background(hex(render.Background)).
	Padding(0, 1)

func cellStyle(c render.CellView) lipgloss.Style {
	s := lipgloss.NewStyle().Background(hex(c.Color))
	if c.Kind == render.Ghost {
		s = lipgloss.NewStyle().Background(hex(render.Background)).Foreground(hex(c.Color))
	}
	return s
}

func cellString(c render.CellView) string {
	if c.Kind == render.Ghost {
		return cellStyle(c).Render("[]")
	}
	return cellStyle(c).Render(cellText)
}

func viewBoard(s game.Snapshot, ghost bool) string {
	rows := render.Cells(s, ghost)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(cellString(c))
		}
		lines[i] = b.String()
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// viewPreview draws a piece in a 3x3 box around its pivot.
func viewPreview(p game.PieceView) string {
	var grid [3][3]bool
	for _, o := range p.Offsets {
		if o.X >= -1 && o.X <= 1 && o.Y >= -1 && o.Y <= 1 {
			grid[o.Y+1][o.X+1] = true
		}
	}

	empty := render.CellView{Kind: render.Empty, Color: render.Background}
	block := render.CellView{Kind: render.Piece, Color: p.Color}
	lines := make([]string, 3)
	for y, row := range grid {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString(cellString(block))
			} else {
				b.WriteString(cellString(empty))
			}
		}
		lines[y] = b.String()
	}
	return previewFrame.Render(strings.Join(lines, "\n"))
}

func viewInfo(s game.Snapshot, status string) string {
	lines := []string{
		textStyle.Render("Next next"),
		viewPreview(s.NextNext),
		textStyle.Render("Next"),
		viewPreview(s.Next),
		"",
	}
	for _, l := range render.Info(s) {
		lines = append(lines, textStyle.Render(l))
	}
	if s.Combo > 1 {
		lines = append(lines, textStyle.Render(fmt.Sprintf("Combo: x%d", s.Combo)))
	}
	lines = append(lines, "", textStyle.Faint(true).Render("c copy  g ghost  p pause  q quit"))
	if status != "" {
		lines = append(lines, textStyle.Render(status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) View() string {
	board := viewBoard(m.snap, m.ghost)
	if msg := render.Message(m.snap); msg != nil {
		box := messageStyle.Render(lipgloss.JoinVertical(lipgloss.Center, msg...))
		board = lipgloss.JoinVertical(lipgloss.Center, board, box)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", viewInfo(m.snap, m.status))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
