package bounce

// Outcome reports what a single OnPrimaryHit call changed.
type Outcome struct {
	Spawned *Sprite // copy of the appended clone, nil if none
	Retired *Sprite // copy of the removed clone, nil if none
	Flipped bool    // growing changed direction
}

// Population is the ordered sprite collection plus the grow/shrink phase.
// Index 0 is always the primary sprite and is never removed; clones are
// appended and removed at the tail, so the last spawned is the first retired.
type Population struct {
	sprites []Sprite
	growing bool
	max     int

	arena        Arena
	cloneW       float64
	cloneH       float64
	cloneSpeeds  []float64
	nextSpriteID uint32
}

func newPopulation(cfg Config) *Population {
	p := &Population{
		sprites:     make([]Sprite, 0, cfg.MaxPopulation),
		growing:     true,
		max:         cfg.MaxPopulation,
		arena:       cfg.Arena,
		cloneW:      cfg.CloneWidth,
		cloneH:      cfg.CloneHeight,
		cloneSpeeds: append([]float64(nil), cfg.CloneSpeeds...),
	}
	pc := cfg.Primary
	var label *Label
	if pc.Label != nil {
		l := *pc.Label
		label = &l
	}
	p.sprites = append(p.sprites, Sprite{
		ID:      p.nextID(),
		X:       pc.X,
		Y:       pc.Y,
		Width:   pc.Width,
		Height:  pc.Height,
		DX:      pc.DX,
		DY:      pc.DY,
		Primary: true,
		Label:   label,
	})
	return p
}

func (p *Population) nextID() uint32 {
	p.nextSpriteID++
	return p.nextSpriteID
}

// Len returns the current number of sprites, primary included.
func (p *Population) Len() int { return len(p.sprites) }

// Max returns the population cap.
func (p *Population) Max() int { return p.max }

// Growing reports whether the next primary hit spawns (true) or retires
// (false) a clone.
func (p *Population) Growing() bool { return p.growing }

// Sprites returns the sprites in spawn order. The returned slice MUST NOT be
// mutated and is only valid until the next Tick.
func (p *Population) Sprites() []Sprite { return p.sprites }

// OnPrimaryHit advances the saw-tooth by one step: while growing it appends a
// clone and stops growing at the cap; while shrinking it pops the newest
// clone and starts growing again once only the primary is left. A cap of 1
// makes every call a no-op.
func (p *Population) OnPrimaryHit(src Source) Outcome {
	var out Outcome
	if p.max == 1 {
		return out
	}

	if p.growing {
		if len(p.sprites) < p.max {
			c := p.spawnClone(src)
			p.sprites = append(p.sprites, c)
			out.Spawned = &c
		}
		if len(p.sprites) == p.max {
			p.growing = false
			out.Flipped = true
		}
		return out
	}

	if len(p.sprites) > 1 {
		last := len(p.sprites) - 1
		c := p.sprites[last]
		p.sprites[last] = Sprite{}
		p.sprites = p.sprites[:last]
		out.Retired = &c
	}
	if len(p.sprites) == 1 {
		p.growing = true
		out.Flipped = true
	}
	return out
}

func (p *Population) spawnClone(src Source) Sprite {
	x := src.IntN(int(p.arena.Width-p.cloneW) + 1)
	y := src.IntN(int(p.arena.Height-p.cloneH) + 1)
	dx := p.cloneSpeeds[src.IntN(len(p.cloneSpeeds))]
	dy := p.cloneSpeeds[src.IntN(len(p.cloneSpeeds))]
	return Sprite{
		ID:     p.nextID(),
		X:      float64(x),
		Y:      float64(y),
		Width:  p.cloneW,
		Height: p.cloneH,
		DX:     dx,
		DY:     dy,
	}
}
