package game

// Intent is a discrete request from the player or the fall timer.
type Intent int

const (
	MoveLeft Intent = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	TogglePause
	Tick
	Quit
)

// Intents lists every intent in declaration order.
var Intents = []Intent{MoveLeft, MoveRight, SoftDrop, Rotate, HardDrop, TogglePause, Tick, Quit}

func (i Intent) String() string {
	switch i {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SoftDrop:
		return "soft-drop"
	case Rotate:
		return "rotate"
	case HardDrop:
		return "hard-drop"
	case TogglePause:
		return "toggle-pause"
	case Tick:
		return "tick"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// ParseIntent returns the intent named s, as produced by Intent.String.
func ParseIntent(s string) (Intent, bool) {
	for _, i := range Intents {
		if i.String() == s {
			return i, true
		}
	}
	return 0, false
}

// isKey reports whether the intent comes from a key press. Ticks come from the timer.
func (i Intent) isKey() bool {
	return i != Tick
}
