package game

// State is the engine's machine state.
type State int

const (
	Running State = iota
	Paused
	StageClear
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case StageClear:
		return "stage clear"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// trigger is an event that can move the machine between states.
type trigger int

const (
	triggerPause trigger = iota
	triggerKey
	triggerStageClear
	triggerTopOut
)

// transition returns the state reached from s on t, and false when t does not
// apply in s.
func transition(s State, t trigger) (State, bool) {
	switch s {
	case Running:
		switch t {
		case triggerPause:
			return Paused, true
		case triggerStageClear:
			return StageClear, true
		case triggerTopOut:
			return GameOver, true
		}
	case Paused:
		if t == triggerKey {
			return Running, true
		}
	case StageClear:
		switch t {
		case triggerKey:
			return Running, true
		case triggerTopOut:
			return GameOver, true
		}
	}
	return s, false
}
