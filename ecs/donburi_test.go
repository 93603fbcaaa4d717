package ecs

import (
	"testing"

	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var nameComponent = donburi.NewComponentType[string]()

func TestSpawnRemovesEntityWhenDone(t *testing.T) {
	world := donburi.NewWorld()
	tw := tempo.New(nil, tempo.WithDuration(1))

	var updates []float64
	tw.OnUpdate(func(r float64) { updates = append(updates, r) })

	e := Spawn(world, tw)
	if !world.Valid(e) {
		t.Fatal("Spawn returned an invalid entity")
	}

	if n := Update(world, 0.5); n != 0 {
		t.Errorf("released %d tweens mid-run", n)
	}
	if n := Update(world, 1.0); n != 1 {
		t.Errorf("released %d tweens, want 1", n)
	}

	if world.Valid(e) {
		t.Error("spawned entity should be removed once its tween completes")
	}
	if len(updates) != 2 || updates[1] != 1 {
		t.Errorf("updates = %v, want [0.5 1]", updates)
	}
}

func TestAttachKeepsEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(nameComponent)
	entry := world.Entry(e)

	Attach(entry, tempo.New(nil, tempo.WithDuration(0)))
	if !entry.HasComponent(Component) {
		t.Fatal("Attach did not add the component")
	}

	Update(world, 0)

	if !world.Valid(e) {
		t.Fatal("attached entity should survive its tween")
	}
	if world.Entry(e).HasComponent(Component) {
		t.Error("tween component should be removed once done")
	}
}

func TestCompletedEventPublished(t *testing.T) {
	world := donburi.NewWorld()

	var received []CompletedEvent
	CompletedEventType.Subscribe(world, func(w donburi.World, ev CompletedEvent) {
		received = append(received, ev)
	})

	done := Spawn(world, tempo.New(nil, tempo.WithDuration(0)))
	cancelled := tempo.New(nil)
	other := Spawn(world, cancelled)
	cancelled.Cancel()
	Spawn(world, tempo.New(nil, tempo.WithLoop()))

	Update(world, 0)
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	states := map[donburi.Entity]tempo.State{}
	for _, ev := range received {
		states[ev.Entity] = ev.State
	}
	if states[done] != tempo.Completed {
		t.Errorf("completed entity state = %v", states[done])
	}
	if states[other] != tempo.Cancelled {
		t.Errorf("cancelled entity state = %v", states[other])
	}
}

func TestOwnerOfStopsTweenOnRemoval(t *testing.T) {
	world := donburi.NewWorld()
	target := world.Create(nameComponent)

	completed := false
	tw := tempo.New(nil, tempo.WithOwner(OwnerOf(world, target)))
	tw.OnComplete(func() { completed = true })
	Spawn(world, tw)

	Update(world, 0.25)
	world.Remove(target)
	Update(world, 1.0)

	if tw.State() != tempo.Cancelled {
		t.Errorf("State = %v, want Cancelled", tw.State())
	}
	if completed {
		t.Error("tween completed after its owner was removed")
	}
}

func TestSystemReadsClock(t *testing.T) {
	world := donburi.NewWorld()
	clock := &tempo.ManualClock{}
	sys := NewSystem(clock)

	tw := tempo.New(clock, tempo.WithDuration(0.5))
	e := Spawn(world, tw)

	clock.Advance(0.25)
	sys.Update(world)
	if !world.Valid(e) {
		t.Fatal("entity removed early")
	}

	clock.Advance(0.25)
	if n := sys.Update(world); n != 1 {
		t.Errorf("released %d, want 1", n)
	}
}

func TestChainAcrossEntities(t *testing.T) {
	world := donburi.NewWorld()
	a := tempo.New(nil, tempo.WithDuration(1))
	b := tempo.New(nil, tempo.WithDuration(1))
	a.Chain(b)
	ea := Spawn(world, a)
	eb := Spawn(world, b)

	Update(world, 1)
	if world.Valid(ea) {
		t.Error("source entity should be removed")
	}
	if !world.Valid(eb) || b.State() == tempo.Idle {
		t.Fatalf("chained tween should be live, state %v", b.State())
	}

	Update(world, 2.5)
	if world.Valid(eb) {
		t.Error("chained entity should be removed after completing")
	}
}
