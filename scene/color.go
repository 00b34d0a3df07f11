package scene

import (
	"image/color"

	"github.com/phanxgames/bounce"
)

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	labelColor   = Color{1, 1, 1, 1}
	captionColor = Color{0.83, 0.83, 0.83, 1} // lightgray
)

// ColorFromRGB converts a simulation color to an opaque Color.
func ColorFromRGB(c bounce.RGB) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: 1,
	}
}

// toRGBA converts to a premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
