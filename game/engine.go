package game

import (
	"fmt"
	"time"
)

// LockResult describes what happened when a piece locked.
type LockResult struct {
	Piece        string
	Rows         []int // cleared row indices, before removal
	Lines        int
	Points       int
	Combo        int // multiplier after the lock
	StageCleared bool
	GameOver     bool
}

// Engine owns the complete state of one game. It is not safe for concurrent
// use; the host applies intents one at a time.
type Engine struct {
	cfg     Config
	catalog *Catalog
	gen     *Generator

	grid     *Grid
	current  *Piece
	next     *Piece
	nextNext *Piece

	stage      int
	threshold  int
	stageLines int
	score      int
	combo      int
	fallDelay  time.Duration
	state      State

	quit  bool
	locks uint64
	last  LockResult
}

// New creates an engine and deals the first pieces.
func New(cfg Config, src Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	catalog, err := NewCatalog(cfg.Shapes)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		catalog: catalog,
		gen:     NewGenerator(catalog, src, cfg.WeightFloor, cfg.Spawn()),
	}
	e.Reset()
	return e, nil
}

// Reset discards the current game and starts a new one at stage 1.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.cfg.Width, e.cfg.Height)
	e.stage = 1
	e.threshold = e.cfg.StageThreshold(e.stage)
	e.stageLines = 0
	e.score = 0
	e.combo = 1
	e.fallDelay = e.cfg.StageFallDelay(e.stage)
	e.state = Running
	e.quit = false
	e.locks = 0
	e.last = LockResult{}

	e.next = e.gen.Next(e.stage)
	e.nextNext = e.gen.Next(e.stage)
	e.promote()
}

func (e *Engine) Config() Config           { return e.cfg }
func (e *Engine) Catalog() *Catalog        { return e.catalog }
func (e *Engine) State() State             { return e.state }
func (e *Engine) Score() int               { return e.score }
func (e *Engine) Combo() int               { return e.combo }
func (e *Engine) Stage() int               { return e.stage }
func (e *Engine) StageLines() int          { return e.stageLines }
func (e *Engine) Threshold() int           { return e.threshold }
func (e *Engine) FallDelay() time.Duration { return e.fallDelay }
func (e *Engine) Locks() uint64            { return e.locks }
func (e *Engine) LastLock() LockResult     { return e.last }
func (e *Engine) QuitRequested() bool      { return e.quit }

// Grid returns a copy of the grid.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece { return *e.current }

// Apply handles one intent and returns the resulting snapshot.
func (e *Engine) Apply(in Intent) Snapshot {
	e.Handle(in)
	return e.Snapshot()
}

// Handle applies one intent and reports whether it changed anything. Intents
// that are not valid in the current state, and moves into walls or the stack,
// are ignored.
func (e *Engine) Handle(in Intent) bool {
	if in == Quit {
		e.quit = true
		return true
	}

	switch e.state {
	case GameOver:
		return false
	case Paused, StageClear:
		if !in.isKey() {
			return false
		}
		return e.fire(triggerKey)
	}

	switch in {
	case TogglePause:
		return e.fire(triggerPause)
	case MoveLeft:
		return e.shift(-1, 0)
	case MoveRight:
		return e.shift(1, 0)
	case Rotate:
		return e.rotate()
	case SoftDrop, Tick:
		if e.shift(0, 1) {
			return true
		}
		e.lockAndAdvance()
		return true
	case HardDrop:
		e.hardDrop()
		return true
	}
	return false
}

func (e *Engine) fire(t trigger) bool {
	next, ok := transition(e.state, t)
	if ok {
		e.state = next
	}
	return ok
}

func (e *Engine) shift(dx, dy int) bool {
	cells := e.current.Translated(dx, dy)
	if !e.grid.IsLegal(cells[:]) {
		return false
	}
	e.current.X += dx
	e.current.Y += dy
	return true
}

func (e *Engine) rotate() bool {
	offsets := e.current.Rotated()
	cells := e.current.CellsWith(offsets)
	if !e.grid.IsLegal(cells[:]) {
		return false
	}
	e.current.CommitRotation(offsets)
	return true
}

func (e *Engine) hardDrop() {
	for {
		cells := e.current.Cells()
		if !e.grid.IsLegal(cells[:]) {
			break
		}
		e.current.Y++
	}
	e.current.Y--
	e.lockAndAdvance()
}

// DropDistance returns how many rows the current piece can fall before it rests.
func (e *Engine) DropDistance() int {
	n := 0
	for {
		cells := e.current.Translated(0, n+1)
		if !e.grid.IsLegal(cells[:]) {
			return n
		}
		n++
	}
}

func (e *Engine) lockAndAdvance() {
	cells := e.current.Cells()
	e.grid.Lock(cells[:], e.current.Color())

	result := LockResult{
		Piece: e.current.shape.name,
		Rows:  e.grid.FullRows(),
	}

	var cleared int
	e.grid, cleared = e.grid.ClearFullRows()
	result.Lines = cleared

	if cleared > 0 {
		result.Points = cleared * cleared * e.combo
		e.score += result.Points
		e.combo *= 2
		e.stageLines += cleared
	} else {
		e.combo = 1
	}
	result.Combo = e.combo

	e.fallDelay = max(e.fallDelay-e.cfg.LockSpeedup, e.cfg.MinFallDelay)

	if e.stageLines >= e.threshold {
		e.clearStage()
		result.StageCleared = true
	}

	e.promote()
	if !e.spawnLegal() {
		e.fire(triggerTopOut)
		result.GameOver = true
	}

	e.locks++
	e.last = result
}

func (e *Engine) clearStage() {
	e.grid = NewGrid(e.cfg.Width, e.cfg.Height)
	e.stageLines -= e.threshold
	e.stage++
	e.threshold = e.cfg.StageThreshold(e.stage)
	e.fallDelay = e.cfg.StageFallDelay(e.stage)
	e.fire(triggerStageClear)
}

// promote moves the preview queue forward by one piece.
func (e *Engine) promote() {
	spawn := e.cfg.Spawn()
	e.current = e.next
	e.current.X, e.current.Y = spawn.X, spawn.Y
	e.next = e.nextNext
	e.nextNext = e.gen.Next(e.stage)
}

func (e *Engine) spawnLegal() bool {
	cells := e.current.Cells()
	return e.grid.IsLegal(cells[:])
}
