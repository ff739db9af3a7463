// Package ecs provides ECS adapters for tumble's contact event system.
//
// The primary adapter is [NewDonburiSink], which bridges resolved collision
// contacts into a [Donburi] world as typed events. Subscribe to
// [ContactEventType] in your ECS systems to react to impacts — score hits,
// play sounds, spawn particles.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	physicsWorld.SetContactSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
