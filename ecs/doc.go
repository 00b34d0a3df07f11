// Package ecs provides ECS adapters for bounce's simulation events.
//
// The primary adapter is [NewDonburiStore], which bridges simulation events
// (wall hits, recolors, spawns, retires, phase flips, pauses) into a
// [Donburi] world as typed events. Subscribe to [SimEventType] in your ECS
// systems to receive them, and call ProcessEvents once per frame on the
// goroutine that owns the world.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sim.SetEventSink(ecs.NewDonburiStore(world))
//	ecs.TrackTally(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
