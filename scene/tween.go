package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colorTween fades the background between two colors. Alpha is not
// animated; backgrounds are always opaque.
type colorTween struct {
	tweens [3]*gween.Tween
	to     Color
	Done   bool
}

func newColorTween(from, to Color, duration float32) *colorTween {
	return &colorTween{
		tweens: [3]*gween.Tween{
			gween.New(float32(from.R), float32(to.R), duration, ease.OutQuad),
			gween.New(float32(from.G), float32(to.G), duration, ease.OutQuad),
			gween.New(float32(from.B), float32(to.B), duration, ease.OutQuad),
		},
		to: to,
	}
}

// Update advances the fade by dt seconds and returns the current color.
// Once finished it returns the exact target color.
func (t *colorTween) Update(dt float32) Color {
	if t.Done {
		return t.to
	}
	var vals [3]float64
	done := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			done = false
		}
	}
	t.Done = done
	if done {
		return t.to
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: 1}
}
