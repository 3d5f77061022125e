package ecs

import (
	"github.com/phanxgames/dragview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for dragview drag events.
var DragEventType = events.NewEventType[dragview.DragEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Drag events
// are published to DragEventType and delivered on ProcessEvents.
func NewDonburiSink(world donburi.World) dragview.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event dragview.DragEvent) {
	DragEventType.Publish(s.world, event)
}
