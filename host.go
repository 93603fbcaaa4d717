package tempo

import (
	"fmt"
	"log/slog"
)

// Owner is whatever a tween animates on behalf of. When the owner reports
// disposed, the tween stops on its next tick without completing.
type Owner interface {
	IsDisposed() bool
}

// OwnerFunc adapts a function reporting disposal to Owner.
type OwnerFunc func() bool

// IsDisposed calls f.
func (f OwnerFunc) IsDisposed() bool { return f() }

// Handle identifies a tween inside a Host. Handles of released tweens go
// stale and stop resolving, even after their slot is reused. The zero
// Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was issued by a Host. It does not report whether
// the tween is still alive; use Host.Get for that.
func (h Handle) Valid() bool { return h.gen != 0 }

type slot struct {
	tween *Tween
	gen   uint32
	born  uint64 // host frame the tween was created in
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger used by the host and handed to the tweens
// it creates.
func WithHostLogger(l *slog.Logger) HostOption {
	return func(h *Host) { h.logger = l }
}

// Host owns a set of tweens, ticks them from one clock and releases each one
// once it is done. There is no global host; create one per update loop.
//
// A Host is single-threaded: Create, Tick and the other methods must not be
// called concurrently.
type Host struct {
	clock  Clock
	slots  []slot
	free   []uint32
	live   int
	frame  uint64
	logger *slog.Logger
}

// NewHost creates a host reading time from clock.
func NewHost(clock Clock, opts ...HostOption) *Host {
	h := &Host{clock: clock}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Clock returns the host's time source.
func (h *Host) Clock() Clock { return h.clock }

// Len returns the number of tweens the host still holds, including idle
// chained tweens.
func (h *Host) Len() int { return h.live }

// Create starts a tween owned by owner (which may be nil) and returns its
// handle. Without options the tween lasts one second with Linear EaseOut.
// A tween created while the host is ticking is first ticked on the next
// host tick.
func (h *Host) Create(owner Owner, opts ...Option) Handle {
	base := make([]Option, 0, len(opts)+2)
	if h.logger != nil {
		base = append(base, WithLogger(h.logger))
	}
	if owner != nil {
		base = append(base, WithOwner(owner))
	}
	t := New(h.clock, append(base, opts...)...)

	var idx uint32
	if n := len(h.free); n > 0 {
		idx = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		h.slots = append(h.slots, slot{gen: 1})
		idx = uint32(len(h.slots) - 1)
	}
	s := &h.slots[idx]
	s.tween = t
	s.born = h.frame
	h.live++
	return Handle{index: idx, gen: s.gen}
}

// Get returns the tween behind handle, or false once it has been released.
func (h *Host) Get(handle Handle) (*Tween, bool) {
	if !handle.Valid() || int(handle.index) >= len(h.slots) {
		return nil, false
	}
	s := &h.slots[handle.index]
	if s.gen != handle.gen || s.tween == nil {
		return nil, false
	}
	return s.tween, true
}

// Chain arranges for dst to start when src completes. See Tween.Chain.
// When the chain is refused, dst keeps running on its own schedule and the
// host releases it as usual.
func (h *Host) Chain(src, dst Handle) error {
	a, ok := h.Get(src)
	if !ok {
		return fmt.Errorf("chain source: %w", ErrStaleHandle)
	}
	b, ok := h.Get(dst)
	if !ok {
		return fmt.Errorf("chain target: %w", ErrStaleHandle)
	}
	if err := a.chain(b); err != nil {
		h.log().Warn("tempo: ignoring chain", "err", err, "source", a.State(), "target", b.State())
		return fmt.Errorf("chain slot %d to %d: %w", src.index, dst.index, err)
	}
	return nil
}

// Cancel stops the tween behind handle without completing it. The host
// releases it at the end of its next tick. Reports false for stale handles.
func (h *Host) Cancel(handle Handle) bool {
	t, ok := h.Get(handle)
	if !ok {
		return false
	}
	t.Cancel()
	return true
}

// Tick reads the clock once and ticks every tween at that time.
func (h *Host) Tick() {
	var now float64
	if h.clock != nil {
		now = h.clock.Now()
	}
	h.TickAt(now)
}

// TickAt ticks every held tween at now, in slot order, then
// releases the ones that are done.
func (h *Host) TickAt(now float64) {
	h.frame++
	// Listeners may create tweens and grow h.slots, so index on every pass.
	for i := 0; i < len(h.slots); i++ {
		t := h.slots[i].tween
		if t == nil || h.slots[i].born == h.frame {
			continue
		}
		t.Tick(now)
	}
	h.sweep()
}

// sweep releases done tweens and invalidates their handles.
func (h *Host) sweep() {
	for i := range h.slots {
		s := &h.slots[i]
		if s.tween == nil || !s.tween.Done() {
			continue
		}
		h.log().Debug("tempo: releasing tween", "slot", i, "state", s.tween.State())
		s.tween = nil
		s.gen++
		if s.gen == 0 {
			s.gen = 1
		}
		h.free = append(h.free, uint32(i))
		h.live--
	}
}

func (h *Host) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return Logger()
}
