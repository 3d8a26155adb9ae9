package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays one tone for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// semitone returns the frequency n semitones above base.
func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

const (
	lockDuration  = 40 * time.Millisecond
	clearDuration = 120 * time.Millisecond
	arpDuration   = 60 * time.Millisecond
	fanfareNote   = 110 * time.Millisecond
	overNote      = 180 * time.Millisecond
)

// Lock is a short burst of noise followed by a low click.
func Lock(rate beep.SampleRate) beep.Streamer {
	noise := note(0, lockDuration/4, WaveNoise, rate)
	click := note(180, lockDuration, WaveTriangle, rate)
	return beep.Seq(newVolume(noise, 0.15), newVolume(click, 0.6))
}

// LineClear is a two-note chime whose pitch rises with the number of cleared
// rows.
func LineClear(lines int, rate beep.SampleRate) beep.Streamer {
	base := semitone(523.25, 4*(max(lines, 1)-1))
	fund := note(base, clearDuration/2, WaveSine, rate)
	over := note(base*2, clearDuration/2, WaveSine, rate)
	return beep.Seq(newVolume(fund, 0.6), newVolume(over, 0.4))
}

// Combo plays a rising arpeggio, one note per doubling of the multiplier
// beyond the first.
func Combo(multiplier int, rate beep.SampleRate) beep.Streamer {
	steps := 0
	for m := multiplier; m > 2; m /= 2 {
		steps++
	}
	steps = min(max(steps, 1), 6)

	notes := make([]beep.Streamer, 0, steps)
	for i := range steps {
		notes = append(notes, note(semitone(659.25, []int{0, 4, 7, 12, 16, 19}[i]), arpDuration, WaveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), 0.25)
}

// StageFanfare is a major triad followed by its octave.
func StageFanfare(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, n := range []int{0, 4, 7, 12} {
		notes = append(notes, note(semitone(392, n), fanfareNote, WaveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3)
}

// GameOver descends in semitone steps.
func GameOver(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, n := range []int{0, -1, -2, -3, -5} {
		notes = append(notes, note(semitone(330, n), overNote, WaveTriangle, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}
