package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes effects into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Volume scales every effect; 1 is unchanged.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		volume: volume,
	}
}

// Initialize opens the speaker. Effects played before Initialize succeeds are
// dropped.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := Streamer(c, p.rate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
}

// Streamer synthesizes the effect for c.
func Streamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c.Kind {
	case KindLock:
		return Lock(rate)
	case KindClear:
		return LineClear(c.Value, rate)
	case KindCombo:
		// Let the row chime ring before the arpeggio.
		return beep.Seq(beep.Silence(rate.N(clearDuration)), Combo(c.Value, rate))
	case KindStage:
		return StageFanfare(rate)
	case KindGameOver:
		return GameOver(rate)
	}
	return nil
}
