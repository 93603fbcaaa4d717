package tempo_test

import (
	"fmt"

	"github.com/phanxgames/tempo"
)

func ExampleTween() {
	var clock tempo.ManualClock
	tw := tempo.New(&clock)
	tw.OnUpdate(func(r float64) { fmt.Printf("x=%.0f\n", tempo.Lerp(0, 100, r)) })
	tw.OnComplete(func() { fmt.Println("done") })

	for i := 0; i < 4; i++ {
		tw.Tick(clock.Advance(0.25))
	}
	// Output:
	// x=25
	// x=50
	// x=75
	// x=100
	// done
}

func ExampleTween_Chain() {
	host := tempo.NewHost(nil)
	first := host.Create(nil, tempo.WithDuration(1))
	second := host.Create(nil, tempo.WithDuration(1))
	_ = host.Chain(first, second)

	t1, _ := host.Get(first)
	t2, _ := host.Get(second)
	t1.OnComplete(func() { fmt.Println("first done") })
	t2.OnComplete(func() { fmt.Println("second done") })

	for now := 0.5; now <= 2; now += 0.5 {
		host.TickAt(now)
	}
	fmt.Println("live:", host.Len())
	// Output:
	// first done
	// second done
	// live: 0
}

func ExampleHost() {
	var clock tempo.ManualClock
	host := tempo.NewHost(&clock)

	h := host.Create(nil,
		tempo.WithDuration(2),
		tempo.WithEasing(tempo.Quadratic),
		tempo.WithDirection(tempo.EaseIn),
	)
	tw, _ := host.Get(h)
	tw.OnUpdate(func(r float64) { fmt.Printf("%.4f\n", r) })

	for i := 0; i < 4; i++ {
		clock.Advance(0.5)
		host.Tick()
	}
	_, alive := host.Get(h)
	fmt.Println("alive:", alive)
	// Output:
	// 0.0625
	// 0.2500
	// 0.5625
	// 1.0000
	// alive: false
}
