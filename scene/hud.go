package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudText formats the overlay from the simulation state. FPS and TPS are
// passed in so the text can be built outside the game loop.
func (s *Scene) hudText(fps, tps float64) string {
	phase := "growing"
	if !s.sim.Growing() {
		phase = "shrinking"
	}
	st := s.sim.Stats()
	txt := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nsprites: %d/%d (%s)\nhits: %d  spawned: %d  retired: %d\nbg: %s",
		fps, tps,
		s.sim.Len(), s.sim.Population().Max(), phase,
		st.WallHits, st.Spawned, st.Retired,
		s.sim.Background().Hex())
	if s.sim.Paused() {
		txt += "\nPAUSED (space to resume)"
	}
	return txt
}

// drawHUD prints the overlay in the top-left corner.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.hudText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}
