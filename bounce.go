package bounce

// RGB is a background color with 8-bit channels. Recolor requests always
// carry channels in [0, 100].
type RGB struct {
	R, G, B uint8
}

// Hex returns the color formatted as "#rrggbb".
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b[:])
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inside reports whether r lies entirely within outer. Shared edges count as
// inside.
func (r Rect) Inside(outer Rect) bool {
	return r.X >= outer.X && r.Right() <= outer.Right() &&
		r.Y >= outer.Y && r.Bottom() <= outer.Bottom()
}

// Arena is the fixed reflecting boundary. Its origin is always (0, 0).
type Arena struct {
	Width, Height float64
}

// Bounds returns the arena as a Rect anchored at the origin.
func (a Arena) Bounds() Rect {
	return Rect{Width: a.Width, Height: a.Height}
}

// EventType identifies a kind of simulation event.
type EventType uint8

const (
	EventWallHit   EventType = iota // the primary sprite touched or crossed a wall
	EventRecolor                    // a new background color was requested
	EventSpawn                      // a clone was appended to the population
	EventRetire                     // the most recent clone was removed
	EventPhaseFlip                  // the population switched between growing and shrinking
	EventPause                      // the simulation was paused
	EventResume                     // the simulation was resumed
)

var eventNames = [...]string{
	EventWallHit:   "wall-hit",
	EventRecolor:   "recolor",
	EventSpawn:     "spawn",
	EventRetire:    "retire",
	EventPhaseFlip: "phase-flip",
	EventPause:     "pause",
	EventResume:    "resume",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}
