package bounce

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) by New and Config.Validate when the
// arena or sprite geometry cannot support the simulation.
var ErrInvalidConfig = errors.New("invalid config")

// SpriteConfig describes the primary sprite at simulation start.
type SpriteConfig struct {
	X, Y          float64
	Width, Height float64
	DX, DY        float64
	Label         *Label
}

// Config holds the full simulation setup. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Arena   Arena
	Primary SpriteConfig

	// Clone geometry. Each clone draws DX and DY independently from
	// CloneSpeeds.
	CloneWidth  float64
	CloneHeight float64
	CloneSpeeds []float64

	// MaxPopulation counts the primary, so 5 means one primary and up to
	// four clones.
	MaxPopulation int
}

// DefaultConfig returns the reference setup: an 800x600 arena, a 100x100
// labelled primary at (100, 100) moving (5, 4), 50x50 clones that are
// strictly faster than the primary, and a population cap of 5.
func DefaultConfig() Config {
	return Config{
		Arena: Arena{Width: 800, Height: 600},
		Primary: SpriteConfig{
			X: 100, Y: 100,
			Width: 100, Height: 100,
			DX: 5, DY: 4,
			Label: &Label{Text: "JDJ", OffsetX: 50, OffsetY: -10},
		},
		CloneWidth:    50,
		CloneHeight:   50,
		CloneSpeeds:   []float64{-8, -7, 7, 8},
		MaxPopulation: 5,
	}
}

// Validate reports the first geometric problem with c, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	a := c.Arena
	p := c.Primary
	if !finite(a.Width, a.Height, p.X, p.Y, p.Width, p.Height, p.DX, p.DY, c.CloneWidth, c.CloneHeight) ||
		!finite(c.CloneSpeeds...) {
		return fmt.Errorf("%w: NaN or infinite geometry", ErrInvalidConfig)
	}
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: arena %vx%v must be positive", ErrInvalidConfig, a.Width, a.Height)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: primary size %vx%v must be positive", ErrInvalidConfig, p.Width, p.Height)
	case p.Width > a.Width || p.Height > a.Height:
		return fmt.Errorf("%w: primary %vx%v larger than arena %vx%v",
			ErrInvalidConfig, p.Width, p.Height, a.Width, a.Height)
	case !(Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}).Inside(a.Bounds()):
		return fmt.Errorf("%w: primary at (%v, %v) outside arena", ErrInvalidConfig, p.X, p.Y)
	case math.Abs(p.DX) > a.Width-p.Width || math.Abs(p.DY) > a.Height-p.Height:
		return fmt.Errorf("%w: primary velocity (%v, %v) too fast for arena", ErrInvalidConfig, p.DX, p.DY)
	case c.MaxPopulation < 1:
		return fmt.Errorf("%w: max population %d must be at least 1", ErrInvalidConfig, c.MaxPopulation)
	}

	// Clone geometry only matters when clones can exist.
	if c.MaxPopulation == 1 {
		return nil
	}
	switch {
	case c.CloneWidth <= 0 || c.CloneHeight <= 0:
		return fmt.Errorf("%w: clone size %vx%v must be positive", ErrInvalidConfig, c.CloneWidth, c.CloneHeight)
	case c.CloneWidth > a.Width || c.CloneHeight > a.Height:
		return fmt.Errorf("%w: clone %vx%v larger than arena %vx%v",
			ErrInvalidConfig, c.CloneWidth, c.CloneHeight, a.Width, a.Height)
	case len(c.CloneSpeeds) == 0:
		return fmt.Errorf("%w: no clone speeds", ErrInvalidConfig)
	}
	limit := math.Min(a.Width-c.CloneWidth, a.Height-c.CloneHeight)
	for _, v := range c.CloneSpeeds {
		if math.Abs(v) > limit {
			return fmt.Errorf("%w: clone speed %v too fast for arena", ErrInvalidConfig, v)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
