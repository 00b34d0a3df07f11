package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/ecs"
)

// fakeKeys reports each key in pressed once, on the next poll.
type fakeKeys struct {
	pressed map[ebiten.Key]bool
}

func (k *fakeKeys) JustPressed(key ebiten.Key) bool {
	if k.pressed[key] {
		delete(k.pressed, key)
		return true
	}
	return false
}

func (k *fakeKeys) press(key ebiten.Key) {
	if k.pressed == nil {
		k.pressed = make(map[ebiten.Key]bool)
	}
	k.pressed[key] = true
}

func newTestScene(t *testing.T, cfg Config) (*Scene, *fakeKeys) {
	t.Helper()
	sim, err := bounce.New(bounce.DefaultConfig(), bounce.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	s := New(sim, nil, nil, cfg)
	keys := &fakeKeys{}
	s.keys = keys
	return s, keys
}

func update(t *testing.T, s *Scene, n int) {
	t.Helper()
	for range n {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestNewSceneFirstFrame(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
	cmd := s.commands[0]
	if !cmd.primary || cmd.x != 100 || cmd.y != 100 {
		t.Errorf("first command = %+v, want primary at (100, 100)", cmd)
	}
	if cmd.label != "JDJ" || cmd.lx != 150 || cmd.ly != 90 {
		t.Errorf("label = %q at (%v, %v), want JDJ at (150, 90)", cmd.label, cmd.lx, cmd.ly)
	}
	if s.cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.cfg.ScreenshotDir, "screenshots")
	}
}

func TestSceneUpdateTicks(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	update(t, s, 1)
	if got := s.sim.Stats().Ticks; got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
	if len(s.commands) != 1 || s.commands[0].x != 105 || s.commands[0].y != 104 {
		t.Errorf("commands = %+v, want primary at (105, 104)", s.commands)
	}
}

func TestSceneCommandsFollowPopulation(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	update(t, s, 101)
	if len(s.commands) != 2 {
		t.Fatalf("commands = %d, want 2 after first hit", len(s.commands))
	}
	for i, sp := range s.sim.Sprites() {
		if s.commands[i].id != sp.ID || s.commands[i].x != sp.X || s.commands[i].y != sp.Y {
			t.Errorf("command %d = %+v, sprite = %+v", i, s.commands[i], sp)
		}
	}
}

func TestScenePauseKey(t *testing.T) {
	s, keys := newTestScene(t, Config{})
	update(t, s, 10)

	keys.press(keyPause)
	update(t, s, 1)
	if !s.sim.Paused() {
		t.Fatal("space did not pause")
	}
	before := append([]drawCommand(nil), s.commands...)
	ticks := s.sim.Stats().Ticks

	update(t, s, 50)
	if s.sim.Stats().Ticks != ticks {
		t.Errorf("ticks advanced while paused: %d -> %d", ticks, s.sim.Stats().Ticks)
	}
	if len(s.commands) != len(before) || s.commands[0] != before[0] {
		t.Errorf("commands changed while paused")
	}

	keys.press(keyPause)
	update(t, s, 1)
	if s.sim.Paused() || s.sim.Stats().Ticks != ticks+1 {
		t.Errorf("resume: paused=%v ticks=%d, want false %d", s.sim.Paused(), s.sim.Stats().Ticks, ticks+1)
	}
}

func TestSceneQuit(t *testing.T) {
	s, keys := newTestScene(t, Config{})
	keys.press(keyQuit)
	if err := s.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update err = %v, want ebiten.Termination", err)
	}
}

func TestSceneScreenshotKey(t *testing.T) {
	s, keys := newTestScene(t, Config{})
	keys.press(keyScreenshot)
	update(t, s, 1)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "manual" {
		t.Errorf("screenshot queue = %v, want [manual]", s.screenshotQueue)
	}
}

func TestSceneRecolorInstant(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	update(t, s, 101)
	want := ColorFromRGB(s.sim.Background())
	if s.Background() != want {
		t.Errorf("Background() = %v, want %v", s.Background(), want)
	}
	if s.bgTween != nil {
		t.Error("tween started with zero duration")
	}
}

func TestSceneRecolorTween(t *testing.T) {
	s, _ := newTestScene(t, Config{TweenDuration: 0.1})
	update(t, s, 101)
	if s.bgTween == nil {
		t.Fatal("no tween after wall hit")
	}
	// 0.1s at 60 TPS finishes within 7 frames; the next hit is far away.
	update(t, s, 10)
	if s.bgTween != nil {
		t.Error("tween still running")
	}
	if want := ColorFromRGB(s.sim.Background()); s.Background() != want {
		t.Errorf("Background() = %v, want %v", s.Background(), want)
	}
}

func TestSceneEventsReachWorld(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	var got []bounce.EventType
	ecs.Subscribe(s.World(), func(e bounce.Event) { got = append(got, e.Type) })

	update(t, s, 100)
	if len(got) != 0 {
		t.Fatalf("events before first hit: %v", got)
	}
	update(t, s, 1)
	want := []bounce.EventType{bounce.EventWallHit, bounce.EventRecolor, bounce.EventSpawn}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSceneEventSinkSeesEventsInTick(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	var direct, bus []bounce.EventType
	s.AddEventSink(bounce.EventSinkFunc(func(e bounce.Event) { direct = append(direct, e.Type) }))
	ecs.Subscribe(s.World(), func(e bounce.Event) { bus = append(bus, e.Type) })

	s.sim.Tick() // bypass Update so the bus is not drained
	for range 100 {
		s.sim.Tick()
	}
	if len(direct) != 3 || direct[0] != bounce.EventWallHit {
		t.Fatalf("direct sink = %v, want [WallHit Recolor Spawn]", direct)
	}
	if len(bus) != 0 {
		t.Fatalf("bus delivered %v before ProcessEvents", bus)
	}
	ecs.ProcessEvents(s.World())
	if len(bus) != 3 {
		t.Errorf("bus = %v after ProcessEvents, want 3 events", bus)
	}
}

func TestSceneMuteKey(t *testing.T) {
	muted := false
	s, keys := newTestScene(t, Config{OnMuteKey: func() { muted = !muted }})
	keys.press(keyMute)
	update(t, s, 1)
	if !muted {
		t.Error("M did not call OnMuteKey")
	}
	update(t, s, 1)
	if !muted {
		t.Error("OnMuteKey called without a key press")
	}

	// No handler: the key is ignored.
	s2, keys2 := newTestScene(t, Config{})
	keys2.press(keyMute)
	update(t, s2, 1)
}

func TestSceneLayout(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	w, h := s.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = (%d, %d), want (800, 600)", w, h)
	}
}

func TestSceneDebugMode(t *testing.T) {
	s, _ := newTestScene(t, Config{Debug: true})
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestHUDText(t *testing.T) {
	s, _ := newTestScene(t, Config{ShowHUD: true})
	txt := s.hudText(60, 60)
	for _, want := range []string{"FPS: 60.0", "sprites: 1/5 (growing)", "hits: 0", "bg: #000000"} {
		if !strings.Contains(txt, want) {
			t.Errorf("HUD %q missing %q", txt, want)
		}
	}
	if strings.Contains(txt, "PAUSED") {
		t.Error("HUD shows PAUSED while running")
	}
	s.sim.Pause()
	if !strings.Contains(s.hudText(60, 60), "PAUSED") {
		t.Error("HUD missing PAUSED")
	}
}
