package render_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tos-kamiya/trios/game"
	"github.com/tos-kamiya/trios/render"
)

// newEngine deals only horizontal I pieces.
func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Shapes = []game.ShapeDef{game.DefaultShapes()[0]}
	e, err := game.New(cfg, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	return e
}

func TestCellsClassification(t *testing.T) {
	e := newEngine(t)
	e.Apply(game.HardDrop) // I locked at row 21, columns 3-5
	for range 10 {
		e.Apply(game.SoftDrop)
	}
	s := e.Snapshot()
	require.Equal(t, 11, s.Current.Pivot.Y)

	cells := render.Cells(s, false)
	require.Len(t, cells, 20)
	require.Len(t, cells[0], 8)

	bottom := cells[19]
	assert.Equal(t, render.Empty, bottom[0].Kind)
	assert.Equal(t, render.Locked, bottom[3].Kind)
	assert.Equal(t, s.Current.Color, bottom[4].Color)

	// Row 11 holds the falling piece; its columns are highlighted above the stack.
	assert.Equal(t, render.Piece, cells[9][4].Kind)
	assert.Equal(t, render.Column, cells[0][3].Kind)
	assert.Equal(t, render.Column, cells[18][5].Kind)
	assert.Equal(t, render.Empty, cells[18][6].Kind)
}

func TestCellsGapBelowOverhang(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Shapes = []game.ShapeDef{{
		Name:    "v",
		Offsets: []game.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Weight:  1,
	}}
	e, err := game.New(cfg, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	// A v rests on its stem and leaves the cells under its arms empty.
	e.Apply(game.HardDrop)
	s := e.Snapshot()

	cells := render.Cells(s, false)
	assert.Equal(t, render.Locked, cells[19][4].Kind, "stem")
	assert.Equal(t, render.Locked, cells[18][3].Kind, "arm")
	assert.Equal(t, render.Gap, cells[19][3].Kind, "under the left arm")
	assert.Equal(t, render.Gap, cells[19][5].Kind, "under the right arm")
}

func TestCellsGhost(t *testing.T) {
	s := newEngine(t).Snapshot()

	without := render.Cells(s, false)
	with := render.Cells(s, true)

	assert.Equal(t, render.Column, without[19][4].Kind)
	assert.Equal(t, render.Ghost, with[19][4].Kind)
	assert.Equal(t, render.Ghost, with[19][3].Kind)
	assert.Equal(t, render.Empty, with[19][2].Kind)
}

func TestMessage(t *testing.T) {
	e := newEngine(t)
	assert.Nil(t, render.Message(e.Snapshot()))

	e.Apply(game.TogglePause)
	assert.Equal(t, []string{"Paused"}, render.Message(e.Snapshot()))

	s := e.Snapshot()
	s.State = game.StageClear
	s.Stage = 3
	assert.Equal(t, "Stage 2 Clear!", render.Message(s)[0])

	s.State = game.GameOver
	s.FinalScore = 41
	assert.Equal(t, []string{"Game Over.", "Final Score: 41", "Press ESC to exit."}, render.Message(s))
}

func TestBuild(t *testing.T) {
	s := newEngine(t).Snapshot()

	w, h := render.Size(s, render.DefaultOptions())
	assert.Equal(t, 530.0, w)
	assert.Equal(t, 600.0, h)

	sc := render.Build(s, render.DefaultOptions())
	assert.Equal(t, render.Background, sc.Background)

	var labels []string
	fills := 0
	for _, it := range sc.Items {
		switch it.Kind {
		case render.Text:
			labels = append(labels, it.Label)
		case render.FillRect:
			fills++
		}
	}
	assert.Equal(t, []string{"Score: 0", "Stage: 1", "Lines remaining: 10"}, labels)
	// The piece is still in the hidden rows: three column highlights per
	// visible row plus two previews of three cells each.
	assert.Equal(t, 20*3+6, fills)

	m := render.Measure(s, render.DefaultOptions())
	assert.Equal(t, render.Rect{X: 260, Y: 20, W: 200, H: 100}, m.PreviewTop)
	assert.Equal(t, render.Rect{X: 260, Y: 140, W: 200, H: 100}, m.PreviewLow)
	assert.Equal(t, 260.0, m.InfoY)
}

func TestBuildPausedAddsMessage(t *testing.T) {
	e := newEngine(t)
	s := e.Apply(game.TogglePause)

	sc := render.Build(s, render.DefaultOptions())
	last := sc.Items[len(sc.Items)-1]
	assert.Equal(t, render.Text, last.Kind)
	assert.Equal(t, "Paused", last.Label)
	assert.Equal(t, render.AlignCenter, last.Align)
}
