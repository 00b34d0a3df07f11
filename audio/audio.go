// Package audio plays short synthesized effects for simulation events.
package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/bounce"
)

const sampleRate = beep.SampleRate(44100)

// initSpeaker is replaced in tests to simulate a missing audio device.
var initSpeaker = speaker.Init

// Player turns simulation events into sounds. A Player that was never
// initialized, or whose initialization failed, silently ignores events.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Init before events can be heard.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := initSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// InitOrWarn calls Init and logs a failure instead of returning it. The game
// runs fine without sound.
func (p *Player) InitOrWarn() {
	p.InitOrWarnTo(os.Stderr)
}

// InitOrWarnTo is InitOrWarn with the warning written to w. Terminal front
// ends buffer it until the screen is restored.
func (p *Player) InitOrWarnTo(w io.Writer) {
	if err := p.Init(); err != nil {
		_, _ = fmt.Fprintf(w, "[bounce] audio disabled: %v\n", err)
	}
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// EmitEvent implements bounce.EventSink.
func (p *Player) EmitEvent(e bounce.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.soundFor(e.Type)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores effects. A muted player stays attached to
// the event stream.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether effects are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// soundFor is Sound filtered by the mute flag. p.mu must be held.
func (p *Player) soundFor(t bounce.EventType) beep.Streamer {
	if p.muted {
		return nil
	}
	return Sound(t)
}

// Sound returns the effect for an event type, or nil if the event is silent.
func Sound(t bounce.EventType) beep.Streamer {
	switch t {
	case bounce.EventWallHit:
		return tone(330, 60*time.Millisecond, -1)
	case bounce.EventSpawn:
		return beep.Seq(
			tone(660, 40*time.Millisecond, -1.5),
			tone(880, 60*time.Millisecond, -1.5),
		)
	case bounce.EventRetire:
		return beep.Seq(
			tone(520, 40*time.Millisecond, -1.5),
			tone(260, 80*time.Millisecond, -1.5),
		)
	}
	return nil
}

// tone is a sine wave of the given frequency and length at volume (base 2).
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		// Only fails for frequencies at or above the Nyquist limit.
		return beep.Silence(sampleRate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   volume,
	}
}
