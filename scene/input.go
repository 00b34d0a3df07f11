package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings.
const (
	keyPause      = ebiten.KeySpace
	keyScreenshot = ebiten.KeyF12
	keyQuit       = ebiten.KeyEscape
	keyMute       = ebiten.KeyM
)

// keySource reports edge-triggered key presses for the current frame.
type keySource interface {
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// processInput applies at most one injected action, then real key presses.
// Everything here runs before the frame's tick, so a pause toggle takes
// effect immediately.
func (s *Scene) processInput() {
	s.processInjectedInput()

	if s.keys == nil {
		return
	}
	if s.keys.JustPressed(keyPause) {
		s.sim.TogglePause()
	}
	if s.keys.JustPressed(keyScreenshot) {
		s.Screenshot("manual")
	}
	if s.keys.JustPressed(keyMute) && s.cfg.OnMuteKey != nil {
		s.cfg.OnMuteKey()
	}
	if s.keys.JustPressed(keyQuit) {
		s.quit = true
	}
}
