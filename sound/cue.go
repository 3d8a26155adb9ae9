// Package sound plays short synthesized effects for game events: a click when
// a piece locks, a chime for cleared rows, an arpeggio for a running combo, a
// fanfare on stage clear and a falling phrase on game over.
package sound

import "github.com/tos-kamiya/trios/game"

// Kind identifies a sound effect.
type Kind int

const (
	KindLock Kind = iota
	KindClear
	KindCombo
	KindStage
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindLock:
		return "lock"
	case KindClear:
		return "clear"
	case KindCombo:
		return "combo"
	case KindStage:
		return "stage"
	case KindGameOver:
		return "game-over"
	}
	return "unknown"
}

// Cue is one effect to play. Value is the number of cleared rows for
// KindClear and the multiplier for KindCombo.
type Cue struct {
	Kind  Kind
	Value int
}

// Cues returns the effects for a lock. A stage clear or game over replaces the
// row chime; the combo arpeggio follows a chime once the multiplier has been
// doubled at least twice.
func Cues(r game.LockResult) []Cue {
	switch {
	case r.GameOver:
		return []Cue{{Kind: KindGameOver}}
	case r.StageCleared:
		return []Cue{{Kind: KindStage}}
	case r.Lines == 0:
		return []Cue{{Kind: KindLock}}
	}

	cues := []Cue{{Kind: KindClear, Value: r.Lines}}
	if r.Combo >= 4 {
		cues = append(cues, Cue{Kind: KindCombo, Value: r.Combo})
	}
	return cues
}
