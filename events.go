package bounce

// Event describes one observable change in the simulation. Fields that do
// not apply to the event type are zero.
type Event struct {
	Type       EventType
	Tick       uint64
	SpriteID   uint32
	Population int
	Growing    bool
	Color      RGB
}

// EventSink is the interface for optional event consumers (audio, logging,
// ECS bridges). When set on a Simulation, every event is forwarded to it
// synchronously from Tick and the pause methods.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }

// MultiSink fans events out to several sinks in order. Nil sinks are skipped.
type MultiSink []EventSink

// EmitEvent forwards event to every sink.
func (m MultiSink) EmitEvent(event Event) {
	for _, s := range m {
		if s != nil {
			s.EmitEvent(event)
		}
	}
}
