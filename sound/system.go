package sound

import "github.com/tos-kamiya/trios/driver"

// Sink plays cues. *Player implements it.
type Sink interface {
	Play(c Cue)
}

// System watches the lock counter and plays the cues of every new lock.
type System struct {
	Sink Sink

	locks  uint64
	primed bool
}

func (s *System) Execute(frame *driver.Frame) {
	snap := frame.Snapshot
	if !s.primed || snap.Locks < s.locks {
		s.primed = true
		s.locks = snap.Locks
		return
	}
	if snap.Locks == s.locks {
		return
	}
	s.locks = snap.Locks

	for _, c := range Cues(snap.LastLock) {
		s.Sink.Play(c)
	}
}
