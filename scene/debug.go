package scene

import (
	"fmt"
	"os"
	"time"

	"github.com/phanxgames/bounce"
)

// debugLogTick prints the frame's update time and population to stderr.
func (s *Scene) debugLogTick(elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[bounce] tick %d | update: %v | sprites: %d | paused: %v\n",
		s.sim.Stats().Ticks, elapsed, s.sim.Len(), s.sim.Paused())
}

// debugEvent prints one simulation event to stderr when debug mode is on.
// It is always subscribed to the scene's event bus.
func (s *Scene) debugEvent(e bounce.Event) {
	if !s.debug {
		return
	}
	switch e.Type {
	case bounce.EventRecolor:
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] tick %d: %v %s\n", e.Tick, e.Type, e.Color.Hex())
	case bounce.EventSpawn, bounce.EventRetire:
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] tick %d: %v sprite %d (population %d)\n",
			e.Tick, e.Type, e.SpriteID, e.Population)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] tick %d: %v (population %d, growing %v)\n",
			e.Tick, e.Type, e.Population, e.Growing)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timings and every simulation event are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
