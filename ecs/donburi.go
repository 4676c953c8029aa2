package ecs

import (
	"github.com/phanxgames/jigsaw"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PuzzleEventType is the Donburi event type for jigsaw puzzle events.
var PuzzleEventType = events.NewEventType[jigsaw.PuzzleEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Puzzle events are published to PuzzleEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) jigsaw.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event jigsaw.PuzzleEvent) {
	PuzzleEventType.Publish(s.world, event)
}
