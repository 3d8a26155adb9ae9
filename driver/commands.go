package driver

import "github.com/tos-kamiya/trios/game"

// Handler applies intents. *game.Engine implements it.
type Handler interface {
	Handle(in game.Intent) bool
}

// Commands buffers the intents produced during a frame. They are applied to
// the engine in arrival order when the frame ends, so every system of a frame
// sees the same snapshot.
type Commands struct {
	intents []game.Intent
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Push queues an intent.
func (c *Commands) Push(in game.Intent) {
	c.intents = append(c.intents, in)
}

// Defer queues a function to run after the frame's intents are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending returns the intents queued so far.
func (c *Commands) Pending() []game.Intent {
	return c.intents
}

// Flush applies the queued intents to h in order, then runs deferred
// functions, and resets the buffer. record, when not nil, is told whether each
// intent changed anything.
func (c *Commands) Flush(h Handler, record func(in game.Intent, applied bool)) {
	for _, in := range c.intents {
		ok := h.Handle(in)
		if record != nil {
			record(in, ok)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.intents = c.intents[:0]
	c.defers = c.defers[:0]
}
