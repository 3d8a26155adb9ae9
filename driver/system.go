package driver

// System is one step of the host loop. Systems run in registration order once
// per frame, read the frame-start snapshot and buffer intents on the frame's
// Commands. Systems may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
