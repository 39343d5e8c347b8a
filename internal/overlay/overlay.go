// Package overlay models dismissible overlays (tooltips, dropdowns, modals,
// popovers) as a two-state machine.
//
// An overlay is either Closed or Open. Entering Open runs the OnEnter
// action, typically attaching global listeners; leaving it runs OnExit.
// Whether the open flag is owned by the overlay or delegated to the host is
// decided once, at construction, through value.Value.
package overlay

import (
	"github.com/alexisbeaulieu97/loom/internal/value"
)

// State is the overlay state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Reason records what triggered a transition.
type Reason int

const (
	ReasonAction Reason = iota
	ReasonEscape
	ReasonOutsideClick
	ReasonExternal
)

func (r Reason) String() string {
	switch r {
	case ReasonEscape:
		return "escape"
	case ReasonOutsideClick:
		return "outside-click"
	case ReasonExternal:
		return "external"
	default:
		return "action"
	}
}

// Options configures a Machine.
type Options struct {
	// Open, when non-nil, delegates the open flag to the host.
	Open *bool
	// DefaultOpen is the initial state of an owned overlay.
	DefaultOpen bool
	// CloseOnEscape enables Escape dismissal.
	CloseOnEscape bool
	// CloseOnOutsideClick enables dismissal by clicking outside.
	CloseOnOutsideClick bool
	// OnOpenChange observes every requested change of the open flag.
	OnOpenChange func(open bool)
	// OnEnter runs when the overlay becomes Open.
	OnEnter func()
	// OnExit runs when the overlay leaves Open.
	OnExit func(reason Reason)
}

// Machine is the Closed/Open state machine of one overlay.
type Machine struct {
	open                *value.Value[bool]
	closeOnEscape       bool
	closeOnOutsideClick bool
	onEnter             func()
	onExit              func(Reason)
	entered             bool
}

// New creates a Machine. A default-open overlay runs its entry action
// immediately.
func New(opts Options) *Machine {
	m := &Machine{
		open:                value.New(opts.Open, opts.DefaultOpen, opts.OnOpenChange),
		closeOnEscape:       opts.CloseOnEscape,
		closeOnOutsideClick: opts.CloseOnOutsideClick,
		onEnter:             opts.OnEnter,
		onExit:              opts.OnExit,
	}
	m.reconcile(ReasonExternal)
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	if m.open.Get() {
		return Open
	}
	return Closed
}

// IsOpen reports whether the overlay is open.
func (m *Machine) IsOpen() bool {
	return m.State() == Open
}

// Delegated reports whether the host owns the open flag.
func (m *Machine) Delegated() bool {
	return m.open.Mode() == value.Delegated
}

// Show requests the Open state.
func (m *Machine) Show() {
	m.request(true, ReasonAction)
}

// Hide requests the Closed state.
func (m *Machine) Hide() {
	m.request(false, ReasonAction)
}

// Toggle flips the requested state.
func (m *Machine) Toggle() {
	m.request(!m.IsOpen(), ReasonAction)
}

// Escape handles the Escape key. It returns true when the key was consumed.
func (m *Machine) Escape() bool {
	if !m.IsOpen() || !m.closeOnEscape {
		return false
	}
	m.request(false, ReasonEscape)
	return true
}

// OutsideClick handles a click outside the overlay. It returns true when
// the click dismissed the overlay.
func (m *Machine) OutsideClick() bool {
	if !m.IsOpen() || !m.closeOnOutsideClick {
		return false
	}
	m.request(false, ReasonOutsideClick)
	return true
}

// Sync pushes a new host-owned open flag. It is a no-op for owned
// overlays.
func (m *Machine) Sync(open bool) {
	if m.open.Sync(open) {
		m.reconcile(ReasonExternal)
	}
}

func (m *Machine) request(open bool, reason Reason) {
	if open == m.IsOpen() {
		return
	}
	m.open.Request(open)
	m.reconcile(reason)
}

// reconcile runs entry/exit actions so they fire exactly once per change of
// the effective state, whoever owns the flag.
func (m *Machine) reconcile(reason Reason) {
	open := m.open.Get()
	switch {
	case open && !m.entered:
		m.entered = true
		if m.onEnter != nil {
			m.onEnter()
		}
	case !open && m.entered:
		m.entered = false
		if m.onExit != nil {
			m.onExit(reason)
		}
	}
}
