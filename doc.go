// Package tempo is a time-driven tween scheduler for game and UI loops.
//
// A [Tween] turns elapsed time into a normalized, eased ratio and hands it
// to listeners. tempo never touches positions, colors or any other
// property: callers apply the ratio themselves, usually with [Lerp]. It
// has no dependency on a renderer or scene graph.
//
// # Quick start
//
// The host owns the clock and calls Tick once per frame:
//
//	clock := tempo.NewWallClock()
//	host := tempo.NewHost(clock)
//
//	h := host.Create(nil,
//		tempo.WithDuration(0.5),
//		tempo.WithEasing(tempo.Cubic),
//	)
//	tw, _ := host.Get(h)
//	tw.OnUpdate(func(r float64) { sprite.X = tempo.Lerp(0, 300, r) })
//	tw.OnComplete(func() { log.Println("arrived") })
//
//	// every frame:
//	host.Tick()
//
// A Tween can also be used without a Host by calling [Tween.Tick] directly.
//
// # Easing
//
// [Ease] evaluates one of the built-in curves ([Linear] through [Bounce]).
// [Compose] applies a [Direction] to any curve; [EaseOut] is the default.
// [Back], [Elastic], [Bounce] and [Exponential] may leave [0, 1] inside the
// interval, so interpolate without clamping. Any gween curve can be used as
// a [Custom] easing through [FromPenner].
//
// # Lifecycle
//
// A tween waits out its Delay, runs for Duration seconds, emits a final
// ratio of 1 (0 for ping-pong), then either restarts (Loop) or completes:
// chained tweens start, OnComplete listeners run and the tween goes
// [Completed]. Ticking a done tween has no effect. [Tween.Cancel] stops a
// tween without completing it.
//
// Configuration mistakes never panic. They are corrected to defaults and
// logged once per tween at warn level; see [SetLogger] and [Tween.Err].
//
// The Ebitengine loop adapter lives in tempo/ebitenhost and the Donburi
// ECS adapter in tempo/ecs.
package tempo
