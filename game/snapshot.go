package game

import (
	"image/color"
	"time"
)

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Name    string
	Color   color.RGBA
	Pivot   Point
	Offsets [3]Point
	Cells   [3]Point
}

func viewOf(p *Piece) PieceView {
	return PieceView{
		Name:    p.shape.name,
		Color:   p.shape.color,
		Pivot:   Point{X: p.X, Y: p.Y},
		Offsets: p.offsets,
		Cells:   p.Cells(),
	}
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the engine.
type Snapshot struct {
	State      State
	Width      int
	Height     int
	HiddenRows int
	Cells      [][]Cell

	Current  PieceView
	Next     PieceView
	NextNext PieceView
	Ghost    [3]Point // where a hard drop would lock the current piece

	Score          int
	Combo          int
	Stage          int
	StageThreshold int
	StageLines     int
	LinesRemaining int
	FinalScore     int // set once the game is over
	FallDelay      time.Duration
	Weights        []int // per shape, catalog order, for the current stage

	Locks    uint64
	LastLock LockResult
	Quit     bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:          e.state,
		Width:          e.cfg.Width,
		Height:         e.cfg.Height,
		HiddenRows:     e.cfg.HiddenRows,
		Cells:          e.grid.Rows(),
		Current:        viewOf(e.current),
		Next:           viewOf(e.next),
		NextNext:       viewOf(e.nextNext),
		Ghost:          e.current.Translated(0, e.DropDistance()),
		Score:          e.score,
		Combo:          e.combo,
		Stage:          e.stage,
		StageThreshold: e.threshold,
		StageLines:     e.stageLines,
		LinesRemaining: max(e.threshold-e.stageLines, 0),
		FallDelay:      e.fallDelay,
		Weights:        Weights(e.catalog, e.stage, e.cfg.WeightFloor),
		Locks:          e.locks,
		LastLock:       e.last,
		Quit:           e.quit,
	}
	s.LastLock.Rows = append([]int(nil), e.last.Rows...)
	if e.state == GameOver {
		s.FinalScore = e.score
	}
	return s
}

// VisibleRows returns the rows below the hidden spawn buffer.
func (s Snapshot) VisibleRows() [][]Cell {
	return s.Cells[s.HiddenRows:]
}

// At returns the locked cell at (x, y); positions outside the grid are empty.
func (s Snapshot) At(x, y int) Cell {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= s.Width {
		return Cell{}
	}
	return s.Cells[y][x]
}

// ColumnTops returns the topmost filled visible row per column, or -1.
func (s Snapshot) ColumnTops() []int {
	tops := make([]int, s.Width)
	for x := range tops {
		tops[x] = -1
		for y := s.HiddenRows; y < len(s.Cells); y++ {
			if s.Cells[y][x].Filled {
				tops[x] = y
				break
			}
		}
	}
	return tops
}

// PieceColumns returns the set of columns covered by the current piece.
func (s Snapshot) PieceColumns() map[int]bool {
	cols := make(map[int]bool, 3)
	for _, c := range s.Current.Cells {
		cols[c.X] = true
	}
	return cols
}
