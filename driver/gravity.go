package driver

import (
	"time"

	"github.com/tos-kamiya/trios/game"
)

// Gravity is the fall timer. It accumulates frame time while the game is
// running and pushes a Tick each time the current fall delay elapses. The
// timer restarts on the first frame after a lock, at the new speed.
//
// Register Gravity after the input systems: its Tick is applied after any key
// intents of the same frame. Gravity reads the frame-start snapshot, so when a
// key locks a piece in the frame the timer expires, the Tick still follows
// and moves the new piece down one row.
type Gravity struct {
	elapsed time.Duration
	locks   uint64
	primed  bool
}

func (g *Gravity) Execute(frame *Frame) {
	s := frame.Snapshot
	if !g.primed || s.Locks != g.locks {
		g.elapsed = 0
		g.locks = s.Locks
		g.primed = true
	}
	if s.State != game.Running || s.FallDelay <= 0 {
		return
	}

	g.elapsed += frame.DeltaTime
	if g.elapsed < s.FallDelay {
		return
	}

	// One tick per frame at most; a long stall does not drop the piece
	// several rows at once.
	frame.Commands.Push(game.Tick)
	g.elapsed %= s.FallDelay
}

// Elapsed returns the time accumulated toward the next tick.
func (g *Gravity) Elapsed() time.Duration {
	return g.elapsed
}

// Reset restarts the timer on the next frame.
func (g *Gravity) Reset() {
	g.primed = false
}
