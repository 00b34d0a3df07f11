package ecs

import (
	"github.com/phanxgames/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimEventType is the Donburi event type for simulation events.
// Subscribe to this in your ECS systems to receive them.
var SimEventType = events.NewEventType[bounce.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are queued on SimEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) bounce.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bounce.Event) {
	SimEventType.Publish(s.world, event)
}

// Subscribe registers fn for every simulation event published to world.
func Subscribe(world donburi.World, fn func(bounce.Event)) {
	SimEventType.Subscribe(world, func(_ donburi.World, e bounce.Event) {
		fn(e)
	})
}

// ProcessEvents delivers queued simulation events to their subscribers.
func ProcessEvents(world donburi.World) {
	SimEventType.ProcessEvents(world)
}
