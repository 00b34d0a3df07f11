package bounce

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"
)

func newTestSim(t *testing.T, cfg Config, seed uint64) *Simulation {
	t.Helper()
	sim, err := New(cfg, NewSource(seed))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sim
}

func TestReferenceScenario(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 1)

	for range 100 {
		sim.Tick()
	}
	p := sim.Primary()
	if p.X != 600 || p.Y != 500 {
		t.Fatalf("after 100 ticks primary at (%v, %v), want (600, 500)", p.X, p.Y)
	}
	if sim.Stats().WallHits != 0 || sim.Len() != 1 {
		t.Fatalf("after 100 ticks hits=%d len=%d, want 0 1", sim.Stats().WallHits, sim.Len())
	}

	sim.Tick()
	p = sim.Primary()
	if p.DY != -4 || p.DX != 5 {
		t.Errorf("after bottom hit velocity (%v, %v), want (5, -4)", p.DX, p.DY)
	}
	if p.Y != 496 {
		t.Errorf("after bottom hit Y = %v, want 496", p.Y)
	}
	if sim.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sim.Len())
	}
	if !sim.Growing() {
		t.Error("Growing() = false, want true")
	}
	if sim.Stats().WallHits != 1 || sim.Stats().Spawned != 1 {
		t.Errorf("stats = %+v, want 1 hit 1 spawn", sim.Stats())
	}
}

func TestContainment(t *testing.T) {
	for _, seed := range []uint64{1, 2, 42, 1234} {
		sim := newTestSim(t, DefaultConfig(), seed)
		arena := sim.Arena().Bounds()
		for tick := range 20000 {
			sim.Tick()
			for _, s := range sim.Sprites() {
				if !s.Bounds().Inside(arena) {
					t.Fatalf("seed %d tick %d: sprite %d at %v left the arena", seed, tick, s.ID, s.Bounds())
				}
			}
		}
		if sim.Stats().WallHits == 0 {
			t.Errorf("seed %d: no wall hits in 20000 ticks", seed)
		}
	}
}

func TestReflectionOnCrossingTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Primary.X = 3
	cfg.Primary.DX = -5
	cfg.Primary.DY = 0
	sim := newTestSim(t, cfg, 1)

	sim.Tick()
	p := sim.Primary()
	if p.DX != 5 {
		t.Errorf("DX = %v, want 5", p.DX)
	}
	if p.X < 0 {
		t.Errorf("X = %v, want >= 0", p.X)
	}
	if sim.Stats().WallHits != 1 {
		t.Errorf("WallHits = %d, want 1", sim.Stats().WallHits)
	}

	// Moving away: no second flip on the following tick.
	sim.Tick()
	if got := sim.Primary().DX; got != 5 {
		t.Errorf("DX after second tick = %v, want 5", got)
	}
}

func TestSawToothThroughTicks(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 5)
	limit := sim.Population().Max()
	period := uint64(2 * (limit - 1))

	var lens []int
	sim.SetBackgroundHook(func(RGB) {
		// Runs before the population transition for this hit.
		lens = append(lens, sim.Len())
	})
	for sim.Stats().WallHits < 3*period {
		sim.Tick()
	}
	want := []int{1, 2, 3, 4, 5, 4, 3, 2}
	for i, got := range lens {
		if got != want[i%len(want)] {
			t.Fatalf("hit %d: len before transition = %d, want %d (all: %v)", i, got, want[i%len(want)], lens)
		}
	}
	if sim.Len() != 1 || !sim.Growing() {
		t.Errorf("after %d full cycles len=%d growing=%v, want 1 true", 3, sim.Len(), sim.Growing())
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 9)
	for range 500 {
		sim.Tick()
	}

	before := slices.Clone(sim.Sprites())
	stats := sim.Stats()
	growing := sim.Growing()
	bg := sim.Background()

	renders := 0
	sim.SetRenderHook(func(Sprite) { renders++ })
	sim.SetBackgroundHook(func(RGB) { t.Error("background hook called while paused") })

	sim.Pause()
	for range 1000 {
		sim.Tick()
	}

	if !reflect.DeepEqual(before, sim.Sprites()) {
		t.Error("sprites changed while paused")
	}
	if sim.Stats() != stats || sim.Growing() != growing || sim.Background() != bg {
		t.Error("simulation state changed while paused")
	}
	if renders != 0 {
		t.Errorf("render hook called %d times while paused", renders)
	}

	if sim.TogglePause() {
		t.Fatal("TogglePause() = true, want false")
	}
	sim.Tick()
	if renders != sim.Len() {
		t.Errorf("render hook called %d times after resume, want one per sprite", renders)
	}
}

func TestHooksPerTick(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 17)

	var rendered []uint32
	backgrounds := 0
	sim.SetRenderHook(func(s Sprite) { rendered = append(rendered, s.ID) })
	sim.SetBackgroundHook(func(c RGB) {
		backgrounds++
		if c.R > 100 || c.G > 100 || c.B > 100 {
			t.Errorf("background %v has a channel above 100", c)
		}
	})

	for range 5000 {
		rendered = rendered[:0]
		before := backgrounds
		sim.Tick()
		if backgrounds-before > 1 {
			t.Fatalf("background hook called %d times in one tick", backgrounds-before)
		}
		ids := make([]uint32, 0, sim.Len())
		for _, s := range sim.Sprites() {
			ids = append(ids, s.ID)
		}
		if !slices.Equal(rendered, ids) {
			t.Fatalf("rendered %v, want %v", rendered, ids)
		}
	}
	if uint64(backgrounds) != sim.Stats().WallHits {
		t.Errorf("background hook calls = %d, wall hits = %d", backgrounds, sim.Stats().WallHits)
	}
}

func TestRedraw(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 1)
	sim.Redraw() // no hook: must not panic

	var got []Sprite
	sim.SetRenderHook(func(s Sprite) { got = append(got, s) })
	sim.Redraw()
	if len(got) != 1 || !got[0].Primary || got[0].X != 100 {
		t.Errorf("Redraw rendered %+v, want the untouched primary", got)
	}
}

func TestEvents(t *testing.T) {
	sim := newTestSim(t, DefaultConfig(), 1)

	var events []Event
	sim.SetEventSink(EventSinkFunc(func(e Event) { events = append(events, e) }))

	for range 101 {
		sim.Tick()
	}
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	want := []EventType{EventWallHit, EventRecolor, EventSpawn}
	if !slices.Equal(types, want) {
		t.Fatalf("event types = %v, want %v", types, want)
	}
	if events[0].Tick != 101 {
		t.Errorf("wall hit tick = %d, want 101", events[0].Tick)
	}
	if events[1].Color != sim.Background() {
		t.Errorf("recolor color = %v, want %v", events[1].Color, sim.Background())
	}
	spawn := events[2]
	if spawn.Population != 2 || !spawn.Growing || spawn.SpriteID != sim.Sprites()[1].ID {
		t.Errorf("spawn event = %+v", spawn)
	}

	events = events[:0]
	sim.Pause()
	sim.Pause()
	sim.Resume()
	if len(events) != 2 || events[0].Type != EventPause || events[1].Type != EventResume {
		t.Errorf("pause events = %+v, want pause then resume", events)
	}
}

func TestMultiSink(t *testing.T) {
	var a, b int
	sink := MultiSink{
		EventSinkFunc(func(Event) { a++ }),
		nil,
		EventSinkFunc(func(Event) { b++ }),
	}
	sink.EmitEvent(Event{Type: EventSpawn})
	if a != 1 || b != 1 {
		t.Errorf("sink calls = %d, %d, want 1, 1", a, b)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestSim(t, DefaultConfig(), 77)
	b := newTestSim(t, DefaultConfig(), 77)
	for range 3000 {
		a.Tick()
		b.Tick()
	}
	if !reflect.DeepEqual(a.Sprites(), b.Sprites()) || a.Background() != b.Background() {
		t.Error("identically seeded simulations diverged")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero arena", func(c *Config) { c.Arena.Width = 0 }},
		{"primary larger than arena", func(c *Config) { c.Primary.Width = 900 }},
		{"primary out of bounds", func(c *Config) { c.Primary.X = 750 }},
		{"primary too fast", func(c *Config) { c.Primary.DY = 501 }},
		{"zero max", func(c *Config) { c.MaxPopulation = 0 }},
		{"clone larger than arena", func(c *Config) { c.CloneHeight = 601 }},
		{"no clone speeds", func(c *Config) { c.CloneSpeeds = nil }},
		{"clone too fast", func(c *Config) { c.CloneSpeeds = []float64{600} }},
		{"NaN primary velocity", func(c *Config) { c.Primary.DX = math.NaN() }},
		{"NaN primary position", func(c *Config) { c.Primary.Y = math.NaN() }},
		{"infinite arena", func(c *Config) { c.Arena.Width = math.Inf(1) }},
		{"infinite primary size", func(c *Config) { c.Primary.Height = math.Inf(-1) }},
		{"NaN clone size", func(c *Config) { c.CloneWidth = math.NaN() }},
		{"NaN clone speed", func(c *Config) { c.CloneSpeeds = []float64{7, math.NaN()} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, NewSource(1))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New with nil source err = %v, want ErrInvalidConfig", err)
	}
}

func TestMaxOneIgnoresCloneGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPopulation = 1
	cfg.CloneSpeeds = nil
	sim := newTestSim(t, cfg, 1)
	for range 2000 {
		sim.Tick()
	}
	if sim.Len() != 1 || !sim.Growing() {
		t.Errorf("len=%d growing=%v, want 1 true", sim.Len(), sim.Growing())
	}
	if sim.Stats().WallHits == 0 {
		t.Error("expected wall hits")
	}
}

func BenchmarkTick(b *testing.B) {
	sim, err := New(DefaultConfig(), NewSource(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		sim.Tick()
	}
}
