// Package ecs provides ECS adapters for framer's animation events.
//
// The primary adapter is [NewDonburiStore], which bridges animation
// lifecycle events (started, finished, cancelled) into a [Donburi] world as
// typed events. Subscribe to [AnimationEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	framer.AnimateEase(loop, value, 100.0, 0.3, framer.AnimationOptions{Store: store})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
