package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, frame := range buf[:n] {
			peak = max(peak, frame[0], -frame[0])
		}
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		n, peak := drain(NewOscillator(440, 100*time.Millisecond, wave, rate))
		assert.Equal(t, 4410, n)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Positive(t, peak)
	}
}

func TestOscillatorSquareIsBinary(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 100)
	n, ok := osc.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 100, n)
	for _, s := range buf {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	assert.Equal(t, 1000, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 0.5, buf[50][0], 0.01)
	assert.Equal(t, 1.0, buf[500][0])
	assert.InDelta(t, 0.05, buf[995][0], 0.001)

	n, ok := env.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEffectsEnd(t *testing.T) {
	rate := beep.SampleRate(8000)
	cases := map[string]beep.Streamer{
		"lock":      Lock(rate),
		"clear":     LineClear(3, rate),
		"combo":     Combo(16, rate),
		"stage":     StageFanfare(rate),
		"game over": GameOver(rate),
	}
	for name, s := range cases {
		n, _ := drain(s)
		assert.Positive(t, n, name)
		assert.Less(t, n, rate.N(2*time.Second), name)
	}
}

func TestComboGrowsWithMultiplier(t *testing.T) {
	rate := beep.SampleRate(8000)
	short, _ := drain(Combo(4, rate))
	long, _ := drain(Combo(32, rate))
	assert.Greater(t, long, short)
}

func TestSemitone(t *testing.T) {
	assert.InDelta(t, 880.0, semitone(440, 12), 1e-9)
	assert.InDelta(t, 220.0, semitone(440, -12), 1e-9)
}
