// Package assets loads the sprite images for the renderers.
//
// Loading happens once at startup. Any failure is returned wrapped in
// ErrMissingAsset or ErrBadAsset and is meant to be fatal: nothing can be
// drawn without the images.
package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	xdraw "golang.org/x/image/draw"
)

//go:embed burger.png
var burgerPNG []byte

var (
	// ErrMissingAsset means the image file does not exist.
	ErrMissingAsset = errors.New("missing asset")
	// ErrBadAsset means the file exists but could not be decoded.
	ErrBadAsset = errors.New("malformed asset")
)

// Images holds the decoded sprite images, already scaled to their on-screen
// sizes.
type Images struct {
	Primary image.Image
	Clone   image.Image
}

// Load reads the sprite image at path, or the built-in burger when path is
// empty, and scales it to the primary and clone sizes.
func Load(path string, primary, clone image.Point) (*Images, error) {
	data := burgerPNG
	name := "built-in burger.png"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		name = path
	}
	if primary.X <= 0 || primary.Y <= 0 || clone.X <= 0 || clone.Y <= 0 {
		return nil, fmt.Errorf("load %s: invalid target sizes %v, %v", name, primary, clone)
	}

	src, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	p := Resize(src, primary.X, primary.Y)
	return &Images{
		Primary: p,
		Clone:   Resize(p, clone.X, clone.Y),
	}, nil
}

// Decode decodes a PNG or JPEG image. Empty images are rejected.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAsset, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrBadAsset)
	}
	return img, nil
}

// Resize scales src to w x h using Catmull-Rom resampling.
func Resize(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// AverageColor returns the mean color of the opaque-ish pixels of img, used
// by renderers that cannot draw images. Fully transparent images yield
// opaque white.
func AverageColor(img image.Image) color.NRGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < 128 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
