package driver

import (
	"sync"

	"github.com/tos-kamiya/trios/game"
)

// Queue collects intents from outside the loop, such as an event callback or
// another goroutine, and hands them to the frame in arrival order.
type Queue struct {
	mu      sync.Mutex
	pending []game.Intent
}

// Send queues an intent for the next frame. It is safe for concurrent use.
func (q *Queue) Send(in game.Intent) {
	q.mu.Lock()
	q.pending = append(q.pending, in)
	q.mu.Unlock()
}

func (q *Queue) Execute(frame *Frame) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, in := range q.pending {
		frame.Commands.Push(in)
	}
	q.pending = q.pending[:0]
}
