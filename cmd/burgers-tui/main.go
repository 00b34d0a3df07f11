// Burgers-tui runs the bouncing burger simulation in a terminal. Sprites are
// drawn as colored blocks scaled from the arena to the terminal size.
//
// Keys: space pauses, m toggles sound, q or escape quits.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/assets"
	"github.com/phanxgames/bounce/audio"
	"github.com/phanxgames/bounce/termview"
)

func main() {
	imagePath := flag.String("image", "", "sprite image used to pick block colors; empty uses the built-in burger")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one from the clock")
	maxPop := flag.Int("max", 5, "maximum population, including the original burger")
	fps := flag.Int("fps", 30, "ticks per second")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	flag.Parse()

	cfg := bounce.DefaultConfig()
	cfg.MaxPopulation = *maxPop
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	imgs, err := assets.Load(*imagePath,
		image.Pt(int(cfg.Primary.Width), int(cfg.Primary.Height)),
		image.Pt(int(cfg.CloneWidth), int(cfg.CloneHeight)))
	if err != nil {
		log.Fatalf("failed to load sprite image: %v", err)
	}

	sim, err := bounce.New(cfg, bounce.NewSource(*seed))
	if err != nil {
		log.Fatalf("failed to create simulation: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}

	// Warnings wait until the terminal is restored.
	var warnings bytes.Buffer
	player := audio.NewPlayer()
	player.SetMuted(*mute)
	player.InitOrWarnTo(&warnings)

	v := termview.New(screen, sim, termview.Config{
		FPS:          *fps,
		PrimaryColor: assets.AverageColor(imgs.Primary),
		CloneColor:   assets.AverageColor(imgs.Clone),
		OnMuteKey:    func() { player.SetMuted(!player.Muted()) },
	})
	v.AddEventSink(player)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = v.Run(ctx)
	stop()
	screen.Fini()
	player.Close()

	_, _ = warnings.WriteTo(os.Stderr)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
