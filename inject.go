package jigsaw

// syntheticPointerEvent represents a single injected pointer frame.
// Screen coordinates are used (matching what a scripted test sees in
// screenshots) and converted to NDC identically to real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame in place of real input.
func (s *Session) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Session) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; minimum is 2.
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic frames.
func (s *Session) Pending() int {
	return len(s.injectQueue)
}

// stepInjected pops one synthetic frame and feeds it through StepScreen.
// Returns true if an event was consumed and real input should be skipped.
func (s *Session) stepInjected(width, height float64) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.StepScreen(evt.pressed, evt.screenX, evt.screenY, width, height)
	return true
}
