package ecs

import (
	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TweenData is the component value stored on an entity.
type TweenData struct {
	Tween *tempo.Tween

	// ownsEntity marks entities created by Spawn; they are removed with
	// their tween instead of just losing the component.
	ownsEntity bool
}

// Component holds a tween on an entity.
var Component = donburi.NewComponentType[TweenData]()

// CompletedEvent is published when an entity's tween is done and has been
// released. State is tempo.Completed or tempo.Cancelled.
type CompletedEvent struct {
	Entity donburi.Entity
	State  tempo.State
}

// CompletedEventType is the Donburi event type for released tweens.
// Subscribe to it and call ProcessEvents in your systems to react.
var CompletedEventType = events.NewEventType[CompletedEvent]()

var tweenQuery = donburi.NewQuery(filter.Contains(Component))

// entityOwner reports an entity as disposed once it is removed from the
// world.
type entityOwner struct {
	world  donburi.World
	entity donburi.Entity
}

func (o entityOwner) IsDisposed() bool {
	return !o.world.Valid(o.entity)
}

// OwnerOf returns a tempo.Owner tied to entity, so a tween created with
// tempo.WithOwner(OwnerOf(world, e)) stops once e is removed.
func OwnerOf(world donburi.World, entity donburi.Entity) tempo.Owner {
	return entityOwner{world: world, entity: entity}
}

// Spawn creates an entity carrying tw. The entity is removed from the world
// when tw is done.
func Spawn(world donburi.World, tw *tempo.Tween) donburi.Entity {
	e := world.Create(Component)
	Component.SetValue(world.Entry(e), TweenData{Tween: tw, ownsEntity: true})
	return e
}

// Attach puts tw on an existing entity, replacing any tween already there.
// Only the component is removed when tw is done; the entity stays.
func Attach(entry *donburi.Entry, tw *tempo.Tween) {
	if !entry.HasComponent(Component) {
		entry.AddComponent(Component)
	}
	Component.SetValue(entry, TweenData{Tween: tw})
}

type finished struct {
	entity     donburi.Entity
	state      tempo.State
	ownsEntity bool
}

// Update ticks every tween in world at now, then releases the done ones and
// publishes a CompletedEvent for each. Returns the number released.
//
// Events are queued; process them with CompletedEventType.ProcessEvents.
func Update(world donburi.World, now float64) int {
	var done []finished
	tweenQuery.Each(world, func(entry *donburi.Entry) {
		data := Component.Get(entry)
		if data.Tween == nil {
			done = append(done, finished{entity: entry.Entity(), state: tempo.Cancelled, ownsEntity: data.ownsEntity})
			return
		}
		data.Tween.Tick(now)
		if data.Tween.Done() {
			done = append(done, finished{entity: entry.Entity(), state: data.Tween.State(), ownsEntity: data.ownsEntity})
		}
	})

	for _, f := range done {
		if !world.Valid(f.entity) {
			continue
		}
		if f.ownsEntity {
			world.Remove(f.entity)
		} else {
			world.Entry(f.entity).RemoveComponent(Component)
		}
		CompletedEventType.Publish(world, CompletedEvent{Entity: f.entity, State: f.state})
	}
	if len(done) > 0 {
		tempo.Logger().Debug("ecs: released tweens", "count", len(done))
	}
	return len(done)
}

// System ticks tweens from a clock. Call Update once per frame.
type System struct {
	Clock tempo.Clock
}

// NewSystem returns a System reading clock.
func NewSystem(clock tempo.Clock) *System {
	return &System{Clock: clock}
}

// Update ticks world at the clock's current reading.
func (s *System) Update(world donburi.World) int {
	return Update(world, s.Clock.Now())
}
