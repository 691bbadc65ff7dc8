// Package ecs provides ECS adapters for framer.
package ecs

import (
	"github.com/phanxgames/framer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for framer animation events.
// Subscribe to this in your ECS systems to react to animations starting,
// finishing or being cancelled.
var AnimationEventType = events.NewEventType[framer.AnimationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Animation events are published to AnimationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) framer.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event framer.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}
