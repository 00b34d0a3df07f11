// Package bounce is the simulation core behind the bouncing burger toy.
//
// A primary sprite bounces inside a fixed [Arena]. Every wall hit by the
// primary requests a new dark background color and advances a saw-tooth
// population of faster clone sprites: one clone is appended per hit until
// the cap is reached, then one is removed per hit (newest first) until only
// the primary is left, and the cycle repeats.
//
// The package has no graphics dependency. Renderers observe it through
// hooks and events and read sprite state between ticks:
//
//	sim, err := bounce.New(bounce.DefaultConfig(), bounce.NewSource(seed))
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim.SetBackgroundHook(func(c bounce.RGB) { bg = c })
//	sim.SetRenderHook(func(s bounce.Sprite) { draw(s) })
//
//	// once per frame:
//	sim.Tick()
//
// See package scene for the Ebitengine renderer and package termview for the
// terminal renderer.
//
// # Motion
//
// Each tick a sprite whose bounding box touches a wall has the matching
// velocity component negated, then moves. A move that would cross a wall is
// mirrored back inside on the same tick, so every sprite stays in the arena.
//
// # Randomness
//
// Clone placement, clone velocity and background colors come from a
// [Source]. Use [NewSource] with a fixed seed for reproducible runs.
package bounce
