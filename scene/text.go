package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	labelScale   = 2
	captionScale = 4
)

// drawCenteredText draws s with its bounding box centered on (cx, cy),
// scaled up from the 7x13 bitmap face.
func drawCenteredText(dst *ebiten.Image, s string, cx, cy, scale float64, c Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		-float64(b.Min.X)-float64(b.Dx())/2,
		-float64(b.Min.Y)-float64(b.Dy())/2,
	)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.DrawWithOptions(dst, s, face, op)
}
