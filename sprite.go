package bounce

// Label is decorative text that travels with its sprite. Its anchor is stored
// as an offset from the sprite's top-left corner, so it can never drift.
type Label struct {
	Text             string
	OffsetX, OffsetY float64
}

// Sprite is a moving rectangle inside the arena. Width and Height are fixed
// for the sprite's lifetime.
type Sprite struct {
	ID            uint32
	X, Y          float64
	Width, Height float64
	DX, DY        float64
	Primary       bool
	Label         *Label
}

// Bounds returns the sprite's axis-aligned bounding box.
func (s *Sprite) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// LabelPos returns the label anchor in arena coordinates. ok is false when
// the sprite has no label.
func (s *Sprite) LabelPos() (x, y float64, ok bool) {
	if s.Label == nil {
		return 0, 0, false
	}
	return s.X + s.Label.OffsetX, s.Y + s.Label.OffsetY, true
}

// step advances the sprite by one tick and reports whether it hit a wall.
//
// A box touching or crossing a wall has that axis negated before the move,
// so the sprite leaves the wall on the tick it arrives. A move that would
// carry the box past a wall is mirrored back inside on the same tick.
func (s *Sprite) step(a Arena) bool {
	hit := false
	b := s.Bounds()

	if b.X <= 0 || b.Right() >= a.Width {
		s.DX = -s.DX
		hit = true
	}
	if b.Y <= 0 || b.Bottom() >= a.Height {
		s.DY = -s.DY
		hit = true
	}

	s.X += s.DX
	s.Y += s.DY

	if reflectAxis(&s.X, &s.DX, s.Width, a.Width) {
		hit = true
	}
	if reflectAxis(&s.Y, &s.DY, s.Height, a.Height) {
		hit = true
	}
	return hit
}

// reflectAxis folds an overshoot past either wall back inside [0, limit]
// and negates the velocity on that axis.
func reflectAxis(pos, vel *float64, size, limit float64) bool {
	switch {
	case *pos < 0:
		*pos = -*pos
	case *pos+size > limit:
		*pos = 2*(limit-size) - *pos
	default:
		return false
	}
	*vel = -*vel
	return true
}
