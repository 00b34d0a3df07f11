package ecs

import (
	"github.com/phanxgames/bounce"

	"github.com/yohamta/donburi"
)

// Tally counts delivered simulation events by type and remembers the most
// recent one.
type Tally struct {
	Counts map[bounce.EventType]uint64
	Last   bounce.Event
}

// TallyComponent stores the Tally on a singleton entity.
var TallyComponent = donburi.NewComponentType[Tally]()

// TrackTally creates the tally entity in world and subscribes it to
// SimEventType. Counts advance when events are processed, not published.
func TrackTally(world donburi.World) donburi.Entity {
	entity := world.Create(TallyComponent)
	TallyComponent.SetValue(world.Entry(entity), Tally{
		Counts: make(map[bounce.EventType]uint64),
	})

	Subscribe(world, func(e bounce.Event) {
		if !world.Valid(entity) {
			return
		}
		t := TallyComponent.Get(world.Entry(entity))
		t.Counts[e.Type]++
		t.Last = e
	})
	return entity
}

// TallyOf returns the tally created by TrackTally. ok is false when world
// has no tally entity.
func TallyOf(world donburi.World) (Tally, bool) {
	entry, ok := TallyComponent.First(world)
	if !ok {
		return Tally{}, false
	}
	return *TallyComponent.Get(entry), true
}
