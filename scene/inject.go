package scene

// inputAction is a synthetic input queued from code or a test script.
type inputAction uint8

const (
	actionTogglePause inputAction = iota
	actionQuit
)

// InjectPause queues a pause toggle, as if space were pressed. The action is
// consumed on the next frame's processInput call.
func (s *Scene) InjectPause() {
	s.injectQueue = append(s.injectQueue, actionTogglePause)
}

// InjectQuit queues a quit, as if escape were pressed.
func (s *Scene) InjectQuit() {
	s.injectQueue = append(s.injectQueue, actionQuit)
}

// processInjectedInput pops one action from the inject queue and applies it.
// Returns true if an action was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	act := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch act {
	case actionTogglePause:
		s.sim.TogglePause()
	case actionQuit:
		s.quit = true
	}
	return true
}
