// Package ecs provides [Donburi] ECS adapters for tempo.
//
// Tweens live on entities through [Component]. [Update] (or a [System])
// ticks them once per frame and releases each one when it is done:
// entities made with [Spawn] are removed, entities given a tween with
// [Attach] only lose the component. Every release publishes a
// [CompletedEvent] to [CompletedEventType].
//
// Usage:
//
//	clock := &tempo.ManualClock{}
//	sys := ecs.NewSystem(clock)
//
//	tw := tempo.New(clock, tempo.WithDuration(0.3))
//	tw.OnUpdate(func(r float64) { ... })
//	ecs.Spawn(world, tw)
//
//	// every frame:
//	clock.Advance(dt)
//	sys.Update(world)
//	ecs.CompletedEventType.ProcessEvents(world)
//
// Use [OwnerOf] to stop a tween when the entity it animates is removed.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
