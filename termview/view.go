// Package termview renders a bounce.Simulation in a terminal with tcell.
// The arena is scaled to the terminal size; each sprite becomes a block of
// colored cells and the background color fills every other cell.
package termview

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/ecs"
)

// Config controls the terminal rendering.
type Config struct {
	// FPS is the tick rate of Run. Defaults to 30.
	FPS int
	// PrimaryColor and CloneColor fill the sprite blocks. Zero values fall
	// back to yellow and orange.
	PrimaryColor color.NRGBA
	CloneColor   color.NRGBA
	// OnMuteKey is called when m is pressed.
	OnMuteKey func()
}

type block struct {
	x, y, w, h float64
	primary    bool
	label      string
	lx, ly     float64
}

// View drives a simulation from a terminal event loop.
type View struct {
	screen tcell.Screen
	sim    *bounce.Simulation
	world  donburi.World
	sinks  bounce.MultiSink
	cfg    Config

	blocks []block
	bg     tcell.Color

	primaryStyle tcell.Style
	cloneStyle   tcell.Style
	labelStyle   tcell.Style
}

// New wires sim's hooks to a view on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, sim *bounce.Simulation, cfg Config) *View {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.PrimaryColor == (color.NRGBA{}) {
		cfg.PrimaryColor = color.NRGBA{R: 230, G: 190, B: 40, A: 255}
	}
	if cfg.CloneColor == (color.NRGBA{}) {
		cfg.CloneColor = color.NRGBA{R: 200, G: 110, B: 30, A: 255}
	}
	v := &View{
		screen: screen,
		sim:    sim,
		world:  donburi.NewWorld(),
		cfg:    cfg,
		blocks: make([]block, 0, sim.Population().Max()),
		bg:     rgbColor(sim.Background()),
	}
	v.primaryStyle = tcell.StyleDefault.Background(nrgbaColor(cfg.PrimaryColor))
	v.cloneStyle = tcell.StyleDefault.Background(nrgbaColor(cfg.CloneColor))
	v.labelStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	sim.SetRenderHook(v.record)
	sim.SetBackgroundHook(func(c bounce.RGB) { v.bg = rgbColor(c) })
	v.AddEventSink(ecs.NewDonburiStore(v.world))
	sim.Redraw()
	return v
}

// World returns the Donburi world that carries simulation events.
func (v *View) World() donburi.World {
	return v.world
}

// AddEventSink attaches another consumer that receives simulation events as
// they happen.
func (v *View) AddEventSink(sink bounce.EventSink) {
	v.sinks = append(v.sinks, sink)
	v.sim.SetEventSink(v.sinks)
}

func (v *View) record(sp bounce.Sprite) {
	b := block{x: sp.X, y: sp.Y, w: sp.Width, h: sp.Height, primary: sp.Primary}
	if lx, ly, ok := sp.LabelPos(); ok {
		b.label = sp.Label.Text
		b.lx, b.ly = lx, ly
	}
	v.blocks = append(v.blocks, b)
}

// Step advances the simulation one tick and delivers its events. While
// paused the last frame's blocks are kept.
func (v *View) Step() {
	if !v.sim.Paused() {
		v.blocks = v.blocks[:0]
	}
	v.sim.Tick()
	ecs.ProcessEvents(v.world)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.sim.TogglePause()
			// The pause event has no tick to ride on.
			ecs.ProcessEvents(v.world)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			if v.cfg.OnMuteKey != nil {
				v.cfg.OnMuteKey()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw paints the current frame and shows it.
func (v *View) Draw() {
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	bgStyle := tcell.StyleDefault.Background(v.bg)
	for y := range h {
		for x := range w {
			v.screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	a := v.sim.Arena()
	sx := float64(w) / a.Width
	sy := float64(h) / a.Height

	for _, b := range v.blocks {
		style := v.cloneStyle
		if b.primary {
			style = v.primaryStyle
		}
		x0, x1 := cellSpan(b.x, b.w, sx, w)
		y0, y1 := cellSpan(b.y, b.h, sy, h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				v.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	for _, b := range v.blocks {
		if b.label != "" {
			v.drawLabel(b.label, b.lx*sx, b.ly*sy, w, h)
		}
	}

	if v.sim.Paused() {
		v.drawText(0, 0, "PAUSED", v.labelStyle.Background(v.bg), w)
	}
	v.screen.Show()
}

// drawLabel centers text on (cx, cy) in cell space, keeping the cell's
// background.
func (v *View) drawLabel(text string, cx, cy float64, w, h int) {
	row := int(math.Floor(cy))
	if row < 0 || row >= h {
		return
	}
	col := int(math.Round(cx - float64(len(text))/2))
	for i, r := range text {
		x := col + i
		if x < 0 || x >= w {
			continue
		}
		_, _, style, _ := v.screen.GetContent(x, row)
		_, bg, _ := style.Decompose()
		v.screen.SetContent(x, row, r, nil, v.labelStyle.Background(bg))
	}
}

func (v *View) drawText(x, y int, text string, style tcell.Style, w int) {
	for i, r := range text {
		if x+i >= w {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run ticks at the configured rate and polls terminal events until the
// user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.FPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Step()
			v.Draw()
		}
	}
}

// cellSpan maps [pos, pos+size) in arena units to a half-open cell range,
// at least one cell wide and clipped to [0, limit).
func cellSpan(pos, size, scale float64, limit int) (int, int) {
	lo := int(math.Floor(pos * scale))
	hi := int(math.Ceil((pos + size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}

func rgbColor(c bounce.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func nrgbaColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
