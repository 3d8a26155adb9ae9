package driver

import (
	"time"

	"github.com/tos-kamiya/trios/game"
)

// Frame is what every system sees during one scheduler step.
type Frame struct {
	DeltaTime time.Duration
	Snapshot  game.Snapshot
	Commands  *Commands
}

func newFrame(dt time.Duration, snapshot game.Snapshot) *Frame {
	return &Frame{
		DeltaTime: dt,
		Snapshot:  snapshot,
		Commands:  newCommands(),
	}
}
