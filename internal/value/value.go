// Package value implements the controlled/uncontrolled duality shared by
// stateful components.
//
// A Value is either Owned, holding and mutating its own state, or
// Delegated, mirroring a host-supplied value and only reporting requested
// changes through the callback. The mode is chosen once by New and never
// changes.
package value

// Mode is the ownership mode of a Value.
type Mode int

const (
	// Owned values keep their own state.
	Owned Mode = iota
	// Delegated values mirror the host's state.
	Delegated
)

func (m Mode) String() string {
	if m == Delegated {
		return "delegated"
	}
	return "owned"
}

// Value holds a component value of type T.
type Value[T any] struct {
	mode     Mode
	current  T
	onChange func(T)
}

// New returns a Delegated value when external is non-nil and an Owned value
// seeded with fallback otherwise. onChange may be nil.
func New[T any](external *T, fallback T, onChange func(T)) *Value[T] {
	if external != nil {
		return &Value[T]{mode: Delegated, current: *external, onChange: onChange}
	}
	return &Value[T]{mode: Owned, current: fallback, onChange: onChange}
}

// NewOwned returns an Owned value.
func NewOwned[T any](initial T, onChange func(T)) *Value[T] {
	return New(nil, initial, onChange)
}

// NewDelegated returns a Delegated value mirroring external.
func NewDelegated[T any](external T, onChange func(T)) *Value[T] {
	return New(&external, external, onChange)
}

// Mode returns the ownership mode.
func (v *Value[T]) Mode() Mode {
	return v.mode
}

// Get returns the current value: the internal state when Owned, the last
// host-supplied value when Delegated.
func (v *Value[T]) Get() T {
	return v.current
}

// Request asks for a new value. Owned values store it; Delegated values
// leave their state untouched until the host calls Sync. The callback is
// invoked in both modes.
func (v *Value[T]) Request(next T) {
	if v.mode == Owned {
		v.current = next
	}
	if v.onChange != nil {
		v.onChange(next)
	}
}

// Sync replaces a Delegated value with the host's latest value and reports
// whether it applied. Owned values ignore Sync.
func (v *Value[T]) Sync(next T) bool {
	if v.mode != Delegated {
		return false
	}
	v.current = next
	return true
}

// Reset silently replaces an Owned value without notifying the callback.
// Delegated values ignore Reset.
func (v *Value[T]) Reset(next T) bool {
	if v.mode != Owned {
		return false
	}
	v.current = next
	return true
}
