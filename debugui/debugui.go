// Package debugui draws Dear ImGui panels over the game while it runs: the
// engine's state, the host loop's timings and the shape weights of the
// current stage.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/tos-kamiya/trios/driver"
)

// Panel renders one ImGui window. Panels are rendered at the end of the frame,
// after the frame's intents have been applied.
type Panel interface {
	Render(frame *driver.Frame)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input. Front
// ends should not turn keys into intents while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers the render function of every panel and updates Input with the
// current capture state. It must run inside an ImGui frame.
type System struct {
	Panels []Panel
	Input  InputState
}

// Execute updates input state and queues all panel renders.
func (s *System) Execute(frame *driver.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range s.Panels {
		frame.Commands.Defer(func() { p.Render(frame) })
	}
}
