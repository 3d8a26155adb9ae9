package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqSource returns its values in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// Stage 1 cumulative weights: I [0,15) slash [15,20) L [20,35) j [35,50) shi [50,65) v [65,70).
const (
	pickI     = 0
	pickSlash = 15
	pickL     = 20
	pickJ     = 35
	pickShi   = 50
	pickV     = 65
)

var gray = color.RGBA{90, 90, 90, 255}

func newTestEngine(t *testing.T, picks ...int) *Engine {
	t.Helper()
	e, err := New(DefaultConfig(), &seqSource{vals: picks})
	require.NoError(t, err)
	return e
}

// fillRow fills row y except for the listed columns.
func fillRow(g *Grid, y int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, x := range holes {
		skip[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if !skip[x] {
			g.Lock([]Point{{x, y}}, gray)
		}
	}
}

func setCurrent(t *testing.T, e *Engine, name string, x, y int) {
	t.Helper()
	shape, ok := e.catalog.Lookup(name)
	require.True(t, ok, "unknown shape %q", name)
	e.current = NewPiece(shape, x, y)
}
