// Burgers opens a window with a labelled burger bouncing around the arena.
// Every time it touches a wall the background changes color and a smaller
// burger is spawned, until the population is full; then burgers are retired
// newest first until only the original is left, and the cycle repeats.
//
// Keys: space pauses, M toggles sound, F12 saves a screenshot, escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/assets"
	"github.com/phanxgames/bounce/audio"
	"github.com/phanxgames/bounce/ecs"
	"github.com/phanxgames/bounce/scene"
)

const (
	windowTitle    = "Bouncing Burgers"
	defaultCaption = "Jerald De Jesus"
)

// options holds the parsed command line.
type options struct {
	imagePath  string
	seed       uint64
	maxPop     int
	tps        int
	scale      float64
	showHUD    bool
	mute       bool
	caption    string
	scriptPath string
	shotDir    string
	tween      float64
	debug      bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("burgers", flag.ContinueOnError)
	fs.StringVar(&o.imagePath, "image", "", "sprite image (PNG or JPEG); empty uses the built-in burger")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed; 0 picks one from the clock")
	fs.IntVar(&o.maxPop, "max", 5, "maximum population, including the original burger")
	fs.IntVar(&o.tps, "tps", 60, "simulation ticks per second")
	fs.Float64Var(&o.scale, "scale", 1, "window scale")
	fs.BoolVar(&o.showHUD, "hud", false, "show FPS and population overlay")
	fs.BoolVar(&o.mute, "mute", false, "start with sound effects muted")
	fs.StringVar(&o.caption, "caption", defaultCaption, "text drawn centered behind the sprites; empty hides it")
	fs.StringVar(&o.scriptPath, "script", "", "JSON script of scripted input and screenshots")
	fs.StringVar(&o.shotDir, "screenshots", "screenshots", "screenshot output directory")
	fs.Float64Var(&o.tween, "tween", 0, "background fade time in seconds; 0 is instant")
	fs.BoolVar(&o.debug, "debug", false, "log timings and simulation events to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	cfg := bounce.DefaultConfig()
	cfg.MaxPopulation = opts.maxPop
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	if opts.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] seed %d\n", opts.seed)
	}

	imgs, err := assets.Load(opts.imagePath,
		image.Pt(int(cfg.Primary.Width), int(cfg.Primary.Height)),
		image.Pt(int(cfg.CloneWidth), int(cfg.CloneHeight)))
	if err != nil {
		log.Fatalf("failed to load sprite image: %v", err)
	}

	sim, err := bounce.New(cfg, bounce.NewSource(opts.seed))
	if err != nil {
		log.Fatalf("failed to create simulation: %v", err)
	}

	player := audio.NewPlayer()
	player.SetMuted(opts.mute)
	player.InitOrWarn()
	defer player.Close()

	s := scene.New(sim,
		ebiten.NewImageFromImage(imgs.Primary),
		ebiten.NewImageFromImage(imgs.Clone),
		scene.Config{
			Caption:       opts.caption,
			ShowHUD:       opts.showHUD,
			TweenDuration: float32(opts.tween),
			ScreenshotDir: opts.shotDir,
			Debug:         opts.debug,
			OnMuteKey:     func() { player.SetMuted(!player.Muted()) },
		})

	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			log.Fatalf("failed to read script: %v", err)
		}
		runner, err := scene.LoadScript(data)
		if err != nil {
			log.Fatalf("failed to load script: %v", err)
		}
		s.SetScriptRunner(runner)
	}

	s.AddEventSink(player)
	ecs.TrackTally(s.World())

	if err := scene.Run(s, scene.RunConfig{Title: windowTitle, Scale: opts.scale, TPS: opts.tps}); err != nil {
		log.Fatal(err)
	}

	if tally, ok := ecs.TallyOf(s.World()); ok && opts.debug {
		st := sim.Stats()
		_, _ = fmt.Fprintf(os.Stderr, "[bounce] %d ticks, %d wall hits, %d spawned, %d retired, %d phase flips\n",
			st.Ticks, st.WallHits, st.Spawned, st.Retired, tally.Counts[bounce.EventPhaseFlip])
	}
}
