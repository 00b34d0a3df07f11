package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the frame drawn at the end of this Update.
// F12 queues one labelled "manual"; script steps use their own label.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// shotName names a capture after the simulation state it shows, e.g.
// "t000101_n2_growing_after-hit.png". Path separators and spaces in label
// become dashes so a capture never leaves the screenshot directory.
func (s *Scene) shotName(label string) string {
	phase := "growing"
	if !s.sim.Growing() {
		phase = "shrinking"
	}
	name := fmt.Sprintf("t%06d_n%d_%s", s.sim.Stats().Ticks, s.sim.Len(), phase)
	label = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '-'
		}
		return r
	}, strings.TrimSpace(label))
	if label != "" {
		name += "_" + label
	}
	return name + ".png"
}

// flushScreenshots writes every queued capture of screen. Failures are
// logged; the queue is always emptied.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	dir := s.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] screenshot: %v\n", err)
		return
	}

	// ReadPixels yields premultiplied RGBA, which is exactly image.RGBA's
	// layout; png converts it on encode.
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)

	for _, label := range s.screenshotQueue {
		path := filepath.Join(dir, s.shotName(label))
		if err := savePNG(path, frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[bounce] screenshot: %v\n", err)
		}
	}
}

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
