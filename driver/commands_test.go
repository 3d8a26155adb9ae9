package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tos-kamiya/trios/game"
)

type recordingHandler struct {
	seen []game.Intent
}

func (h *recordingHandler) Handle(in game.Intent) bool {
	h.seen = append(h.seen, in)
	return in != game.Tick
}

func TestCommandsFlush(t *testing.T) {
	h := &recordingHandler{}
	c := newCommands()
	var order []string

	c.Push(game.MoveLeft)
	c.Defer(func() { order = append(order, "first") })
	c.Push(game.Tick)
	c.Defer(func() { order = append(order, "second") })
	c.Push(game.HardDrop)
	assert.Len(t, c.Pending(), 3)

	var outcomes []bool
	c.Flush(h, func(_ game.Intent, ok bool) { outcomes = append(outcomes, ok) })

	assert.Equal(t, []game.Intent{game.MoveLeft, game.Tick, game.HardDrop}, h.seen)
	assert.Equal(t, []bool{true, false, true}, outcomes)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Empty(t, c.Pending(), "flush resets the buffer")

	c.Push(game.Rotate)
	c.Flush(h, nil)
	assert.Equal(t, game.Rotate, h.seen[3])
}
