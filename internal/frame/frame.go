// Package frame coalesces bursts of layout invalidations (resize, scroll,
// content changes) into at most one recomputation per frame.
//
// A Throttle hands out Bubble Tea commands that deliver a Msg after one
// frame interval. Scheduling while a frame is already pending is a no-op,
// and Cancel invalidates the pending frame so its message is ignored when
// it arrives.
package frame

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is one frame at 60 frames per second.
const DefaultInterval = time.Second / 60

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// Msg is delivered when a scheduled frame elapses.
type Msg struct {
	ID  int64
	Tag int
	At  time.Time
}

// TickFunc schedules fn after d. tea.Tick satisfies it.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Throttle.
type Option func(*Throttle)

// WithInterval overrides the frame interval.
func WithInterval(d time.Duration) Option {
	return func(t *Throttle) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithTick replaces the timer primitive.
func WithTick(tick TickFunc) Option {
	return func(t *Throttle) {
		if tick != nil {
			t.tick = tick
		}
	}
}

// Throttle is a cancellable next-frame scheduler owned by one component.
type Throttle struct {
	id       int64
	tag      int
	pending  bool
	interval time.Duration
	tick     TickFunc
}

// New creates a Throttle.
func New(opts ...Option) *Throttle {
	t := &Throttle{
		id:       nextID(),
		interval: DefaultInterval,
		tick:     tea.Tick,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID identifies the throttle's messages.
func (t *Throttle) ID() int64 {
	return t.id
}

// Pending reports whether a frame is scheduled.
func (t *Throttle) Pending() bool {
	return t.pending
}

// Schedule requests a frame. It returns nil when one is already pending.
func (t *Throttle) Schedule() tea.Cmd {
	if t.pending {
		return nil
	}
	t.pending = true
	id, tag := t.id, t.tag
	return t.tick(t.interval, func(at time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag, At: at}
	})
}

// Cancel drops the pending frame, if any.
func (t *Throttle) Cancel() {
	t.tag++
	t.pending = false
}

// Due reports whether msg is the pending frame of this throttle and, if so,
// marks it consumed. Stale and foreign frames return false.
func (t *Throttle) Due(msg tea.Msg) bool {
	m, ok := msg.(Msg)
	if !ok || m.ID != t.id || m.Tag != t.tag || !t.pending {
		return false
	}
	t.pending = false
	return true
}
