package main

import (
	"math/rand/v2"

	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

var botMoves = []game.Intent{
	game.MoveLeft,
	game.MoveRight,
	game.Rotate,
	game.SoftDrop,
	game.HardDrop,
}

// Bot presses a random key on some frames. It never pauses or quits.
type Bot struct {
	Rand *rand.Rand
	// Rate is the chance of a key press per frame.
	Rate float64
}

func (b *Bot) Execute(frame *driver.Frame) {
	if frame.Snapshot.State == game.GameOver || b.Rand.Float64() >= b.Rate {
		return
	}
	frame.Commands.Push(botMoves[b.Rand.IntN(len(botMoves))])
}
