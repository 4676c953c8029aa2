// Package ecs provides ECS adapters for jigsaw's puzzle event system.
//
// The primary adapter is [NewDonburiStore], which bridges puzzle events
// (pick, drop, snap, complete) into a [Donburi] world as typed events.
// Subscribe to [PuzzleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	session.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
