package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/ecs"
)

// Config controls presentation. The zero value is usable: no caption, no
// HUD, instant background changes, screenshots under "screenshots".
type Config struct {
	// Caption is drawn centered behind the sprites.
	Caption string
	// ShowHUD overlays TPS/FPS and population counters.
	ShowHUD bool
	// TweenDuration is the background fade time in seconds. 0 switches
	// colors instantly.
	TweenDuration float32
	// ScreenshotDir is where F12 and script screenshots are written.
	ScreenshotDir string
	// Debug logs per-frame timings and every simulation event to stderr.
	Debug bool
	// OnMuteKey is called when M is pressed.
	OnMuteKey func()
}

// drawCommand is one sprite as it looked after the last tick.
type drawCommand struct {
	id      uint32
	x, y    float64
	primary bool
	label   string
	lx, ly  float64
}

// Scene is the ebiten.Game that drives a Simulation. It owns the frame
// clock, input, the draw command list and the simulation's event bus.
type Scene struct {
	sim   *bounce.Simulation
	world donburi.World
	sinks bounce.MultiSink
	cfg   Config
	debug bool

	primaryImg *ebiten.Image
	cloneImg   *ebiten.Image

	// Render state, rebuilt from the render hook on every unpaused tick.
	commands []drawCommand

	background Color
	bgTween    *colorTween

	keys        keySource
	injectQueue []inputAction
	runner      *ScriptRunner

	screenshotQueue []string

	quit bool
}

// New creates a scene for sim. The images may be nil in tests; nil images
// are skipped when drawing.
func New(sim *bounce.Simulation, primary, clone *ebiten.Image, cfg Config) *Scene {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	s := &Scene{
		sim:        sim,
		world:      donburi.NewWorld(),
		cfg:        cfg,
		debug:      cfg.Debug,
		primaryImg: primary,
		cloneImg:   clone,
		commands:   make([]drawCommand, 0, sim.Population().Max()),
		background: ColorFromRGB(sim.Background()),
		keys:       ebitenKeys{},
	}

	sim.SetRenderHook(s.record)
	sim.SetBackgroundHook(s.recolor)
	s.AddEventSink(ecs.NewDonburiStore(s.world))
	ecs.Subscribe(s.world, s.debugEvent)

	// First frame before any tick.
	sim.Redraw()
	return s
}

// Simulation returns the simulation driven by this scene.
func (s *Scene) Simulation() *bounce.Simulation {
	return s.sim
}

// World returns the Donburi world that carries simulation events. Events
// are delivered once per Update, after the tick.
func (s *Scene) World() donburi.World {
	return s.world
}

// AddEventSink attaches another consumer of simulation events. Unlike
// subscribers on World, sinks receive each event as it happens, inside the
// tick.
func (s *Scene) AddEventSink(sink bounce.EventSink) {
	s.sinks = append(s.sinks, sink)
	s.sim.SetEventSink(s.sinks)
}

// Background returns the color currently drawn behind the sprites, which
// lags the simulation's requested color while a fade is running.
func (s *Scene) Background() Color {
	return s.background
}

// Update processes input, advances the simulation by one tick, delivers its
// events and advances the background fade.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInput()

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if !s.sim.Paused() {
		s.commands = s.commands[:0]
	}
	s.sim.Tick()
	ecs.ProcessEvents(s.world)

	if s.bgTween != nil {
		s.background = s.bgTween.Update(dt)
		if s.bgTween.Done {
			s.bgTween = nil
		}
	}

	if s.debug {
		s.debugLogTick(time.Since(t0))
	}

	if s.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the background, caption, sprites, labels and HUD, then
// captures any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background.toRGBA())

	a := s.sim.Arena()
	if s.cfg.Caption != "" {
		drawCenteredText(screen, s.cfg.Caption, a.Width/2, a.Height/2, captionScale, captionColor)
	}

	for i := range s.commands {
		cmd := &s.commands[i]
		img := s.cloneImg
		if cmd.primary {
			img = s.primaryImg
		}
		if img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(cmd.x, cmd.y)
			screen.DrawImage(img, op)
		}
		if cmd.label != "" {
			drawCenteredText(screen, cmd.label, cmd.lx, cmd.ly, labelScale, labelColor)
		}
	}

	if s.cfg.ShowHUD {
		s.drawHUD(screen)
	}
	s.flushScreenshots(screen)
}

// Layout fixes the logical screen to the arena size; ebiten scales it to
// the window.
func (s *Scene) Layout(_, _ int) (int, int) {
	a := s.sim.Arena()
	return int(a.Width), int(a.Height)
}

// record is the simulation render hook.
func (s *Scene) record(sp bounce.Sprite) {
	cmd := drawCommand{id: sp.ID, x: sp.X, y: sp.Y, primary: sp.Primary}
	if lx, ly, ok := sp.LabelPos(); ok {
		cmd.label = sp.Label.Text
		cmd.lx, cmd.ly = lx, ly
	}
	s.commands = append(s.commands, cmd)
}

// recolor is the simulation background hook.
func (s *Scene) recolor(c bounce.RGB) {
	to := ColorFromRGB(c)
	if s.cfg.TweenDuration <= 0 {
		s.background = to
		s.bgTween = nil
		return
	}
	s.bgTween = newColorTween(s.background, to, s.cfg.TweenDuration)
}

// RunConfig configures the window for Run.
type RunConfig struct {
	Title string
	// Scale multiplies the arena size to get the initial window size.
	// Defaults to 1.
	Scale float64
	// TPS is the tick rate. Defaults to 60.
	TPS int
}

// Run opens a window sized to the arena and runs the scene until the window
// closes or the scene quits.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	a := s.sim.Arena()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(a.Width*cfg.Scale), int(a.Height*cfg.Scale))
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(s)
}
