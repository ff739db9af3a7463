package ecs

import (
	"github.com/phanxgames/tumble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventType is the Donburi event type for resolved collisions.
// Subscribe to this in your ECS systems to receive a tumble.ContactEvent for
// every body-body contact the solver resolves.
var ContactEventType = events.NewEventType[tumble.ContactEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a ContactSink backed by a Donburi world.
// Contact events are published to ContactEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tumble.ContactSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitContact(event tumble.ContactEvent) {
	ContactEventType.Publish(s.world, event)
}
