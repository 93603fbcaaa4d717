package tempo

// Chain arranges for target to start when t completes and returns target,
// so sequences read left to right:
//
//	fadeIn.Chain(hold).Chain(fadeOut)
//
// target is suspended (Idle) until then, and its timing is measured from the
// moment t completes. Several tweens may be chained from one source; they
// start in the order they were chained. Looping sources never complete and
// therefore never start their chains. Cycles are not detected.
//
// The chain is ignored with a warning when target is nil or t itself, when t
// is already done, or when target has already started or finished. An
// ignored target keeps its own state and schedule.
func (t *Tween) Chain(target *Tween) *Tween {
	if err := t.chain(target); err != nil {
		t.log().Warn("tempo: ignoring chain", "err", err, "source", t.state)
	}
	return target
}

func (t *Tween) chain(target *Tween) error {
	switch {
	case target == nil || target == t:
		return ErrInvalidChain
	case t.Done():
		return ErrChainSourceDone
	case target.started || target.Done():
		return ErrChainTargetStarted
	}
	target.state = Idle
	t.chained = append(t.chained, target)
	return nil
}
