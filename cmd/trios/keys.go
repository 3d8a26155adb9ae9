package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
	"github.com/tos-kamiya/trios/debugui"
	"github.com/tos-kamiya/trios/driver"
	"github.com/tos-kamiya/trios/game"
)

// Keys maps keys to intents.
type Keys struct {
	bindings *intmap.Map[ebiten.Key, game.Intent]
}

func NewKeys() *Keys {
	k := &Keys{bindings: intmap.New[ebiten.Key, game.Intent](16)}
	k.Bind(ebiten.KeyArrowLeft, game.MoveLeft)
	k.Bind(ebiten.KeyArrowRight, game.MoveRight)
	k.Bind(ebiten.KeyArrowDown, game.SoftDrop)
	k.Bind(ebiten.KeyArrowUp, game.Rotate)
	k.Bind(ebiten.KeySpace, game.HardDrop)
	k.Bind(ebiten.KeyP, game.TogglePause)
	k.Bind(ebiten.KeyQ, game.Quit)
	k.Bind(ebiten.KeyEscape, game.Quit)
	return k
}

func (k *Keys) Bind(key ebiten.Key, in game.Intent) {
	k.bindings.Put(key, in)
}

func (k *Keys) Lookup(key ebiten.Key) (game.Intent, bool) {
	return k.bindings.Get(key)
}

// KeyboardSystem turns key presses of the current tick into intents. While the
// game waits for a key after a pause or a stage clear, any key resumes it.
type KeyboardSystem struct {
	Keys  *Keys
	Input *debugui.InputState

	pressed []ebiten.Key
}

func (s *KeyboardSystem) Execute(frame *driver.Frame) {
	if s.Input != nil && s.Input.WantCaptureKeyboard {
		return
	}

	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	waiting := frame.Snapshot.State == game.Paused || frame.Snapshot.State == game.StageClear

	for _, key := range s.pressed {
		in, ok := s.Keys.Lookup(key)
		switch {
		case ok:
			frame.Commands.Push(in)
		case waiting && !isHostKey(key):
			frame.Commands.Push(game.TogglePause)
		}
	}
}

// isHostKey reports keys the window handles itself.
func isHostKey(key ebiten.Key) bool {
	return key == ebiten.KeyR || key == ebiten.KeyF12
}

func justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
