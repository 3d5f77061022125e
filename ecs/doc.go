// Package ecs provides ECS adapters for dragview's drag lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges drag start, drag and
// drag end events into a [Donburi] world as typed events. Subscribe to
// [DragEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	controller.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
