package bounce

import "fmt"

// Stats counts what has happened since the simulation started.
type Stats struct {
	Ticks    uint64 // unpaused ticks
	WallHits uint64 // primary sprite wall hits
	Spawned  uint64
	Retired  uint64
}

// Simulation owns the arena and the sprite population and advances them one
// tick at a time. It is not safe for concurrent use; a single goroutine
// drives Tick and the pause methods, and renderers read between ticks.
type Simulation struct {
	arena  Arena
	pop    *Population
	src    Source
	paused bool

	background RGB
	stats      Stats

	onRender     func(Sprite)
	onBackground func(RGB)
	sink         EventSink
}

// New validates cfg and creates a simulation with only the primary sprite.
// src must not be nil.
func New(cfg Config, src Source) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Simulation{
		arena: cfg.Arena,
		pop:   newPopulation(cfg),
		src:   src,
	}, nil
}

// SetRenderHook registers fn to be called once per sprite per tick with the
// sprite's new state. Passing nil removes the hook.
func (s *Simulation) SetRenderHook(fn func(Sprite)) {
	s.onRender = fn
}

// SetBackgroundHook registers fn to be called when the primary sprite hits a
// wall, at most once per tick. Passing nil removes the hook.
func (s *Simulation) SetBackgroundHook(fn func(RGB)) {
	s.onBackground = fn
}

// SetEventSink sets the optional event consumer.
func (s *Simulation) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Tick advances the simulation by one step. It is a no-op while paused.
//
// The primary sprite (index 0) is always processed first, so a clone spawned
// by its wall hit moves on the same tick and a retired clone does not.
func (s *Simulation) Tick() {
	if s.paused {
		return
	}
	s.stats.Ticks++

	for i := 0; i < len(s.pop.sprites); i++ {
		sp := &s.pop.sprites[i]
		hit := sp.step(s.arena)
		if sp.Primary && hit {
			s.primaryHit(sp.ID)
			// The population may have been reallocated or shortened.
			sp = &s.pop.sprites[i]
		}
		if s.onRender != nil {
			s.onRender(*sp)
		}
	}
}

func (s *Simulation) primaryHit(id uint32) {
	s.stats.WallHits++
	s.emit(Event{Type: EventWallHit, SpriteID: id})

	s.background = randomColor(s.src)
	if s.onBackground != nil {
		s.onBackground(s.background)
	}
	s.emit(Event{Type: EventRecolor, SpriteID: id, Color: s.background})

	out := s.pop.OnPrimaryHit(s.src)
	if out.Spawned != nil {
		s.stats.Spawned++
		s.emit(Event{Type: EventSpawn, SpriteID: out.Spawned.ID})
	}
	if out.Retired != nil {
		s.stats.Retired++
		s.emit(Event{Type: EventRetire, SpriteID: out.Retired.ID})
	}
	if out.Flipped {
		s.emit(Event{Type: EventPhaseFlip})
	}
}

func (s *Simulation) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Tick = s.stats.Ticks
	e.Population = s.pop.Len()
	e.Growing = s.pop.growing
	s.sink.EmitEvent(e)
}

// Redraw calls the render hook for every sprite without advancing. Renderers
// use it to build their first frame.
func (s *Simulation) Redraw() {
	if s.onRender == nil {
		return
	}
	for _, sp := range s.pop.sprites {
		s.onRender(sp)
	}
}

// Pause stops Tick from advancing until Resume or TogglePause.
func (s *Simulation) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.emit(Event{Type: EventPause})
}

// Resume undoes Pause.
func (s *Simulation) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.emit(Event{Type: EventResume})
}

// TogglePause flips the pause flag and returns the new value.
func (s *Simulation) TogglePause() bool {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
	return s.paused
}

// Paused reports whether Tick is currently a no-op.
func (s *Simulation) Paused() bool { return s.paused }

// Arena returns the simulation bounds.
func (s *Simulation) Arena() Arena { return s.arena }

// Population returns the sprite population. Callers must treat it as
// read-only.
func (s *Simulation) Population() *Population { return s.pop }

// Sprites returns the sprites in spawn order. The returned slice MUST NOT be
// mutated and is only valid until the next Tick.
func (s *Simulation) Sprites() []Sprite { return s.pop.sprites }

// Primary returns a copy of the primary sprite.
func (s *Simulation) Primary() Sprite { return s.pop.sprites[0] }

// Len returns the number of sprites, primary included.
func (s *Simulation) Len() int { return s.pop.Len() }

// Growing reports the population phase.
func (s *Simulation) Growing() bool { return s.pop.growing }

// Background returns the most recently requested background color. It is
// the zero color (black) until the first wall hit.
func (s *Simulation) Background() RGB { return s.background }

// Stats returns the running counters.
func (s *Simulation) Stats() Stats { return s.stats }
