// Package placement positions a floating panel (tooltip, popover) next to
// the element that triggered it while keeping the panel inside the
// viewport.
//
// Compute is pure: the same geometry always yields the same Result, so
// callers recompute on every resize, scroll or content change instead of
// caching.
package placement

import (
	"fmt"
	"strings"
)

// Side is the preferred vertical side of the trigger for the panel.
type Side int

const (
	SideTop Side = iota
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide converts "top" or "bottom" into a Side.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top":
		return SideTop, nil
	case "bottom":
		return SideBottom, nil
	default:
		return SideTop, fmt.Errorf("unknown placement side %q", value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Point is an x/y pair.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Options holds the design constants of the positioner.
type Options struct {
	// ViewportPadding keeps the panel away from the viewport edges.
	ViewportPadding float64
	// Gap separates the trigger from the arrow tip.
	Gap float64
	// ArrowSize is the size of the arrow indicator; half of it sticks out
	// of the panel.
	ArrowSize float64
	// ArrowEdgeInset is the minimum distance between the arrow and either
	// edge of the panel.
	ArrowEdgeInset float64
}

// DefaultOptions returns the pixel constants used by browser-sized
// surfaces.
func DefaultOptions() Options {
	return Options{
		ViewportPadding: 12,
		Gap:             8,
		ArrowSize:       16,
		ArrowEdgeInset:  24,
	}
}

// TerminalOptions returns constants expressed in terminal cells.
func TerminalOptions() Options {
	return Options{
		ViewportPadding: 1,
		Gap:             0,
		ArrowSize:       2,
		ArrowEdgeInset:  2,
	}
}

// Offset is the distance between the trigger edge and the panel edge.
func (o Options) Offset() float64 {
	return o.Gap + o.ArrowSize/2
}

// Request is the geometry to position.
type Request struct {
	Trigger  Rect  `json:"trigger" yaml:"trigger"`
	Floating Size  `json:"floating" yaml:"floating"`
	Side     Side  `json:"side" yaml:"side"`
	Viewport Size  `json:"viewport" yaml:"viewport"`
	Scroll   Point `json:"scroll" yaml:"scroll"`
}

// Result is where the panel goes.
type Result struct {
	Top  float64 `json:"top" yaml:"top"`
	Left float64 `json:"left" yaml:"left"`
	// ArrowLeft is the arrow centre measured from the panel's left edge.
	ArrowLeft float64 `json:"arrow_left" yaml:"arrow_left"`
	// Side is the side actually used after flipping.
	Side Side `json:"side" yaml:"side"`
}

// Rect returns the panel rectangle for the given panel size.
func (r Result) Rect(size Size) Rect {
	return Rect{Top: r.Top, Left: r.Left, Width: size.Width, Height: size.Height}
}

// Compute positions the panel using opts.
//
// The panel is centred on the trigger and clamped horizontally into the
// padded viewport. If it does not fit on the preferred side it flips to
// the other side once; when neither side fits the flipped position is
// kept and the panel overflows.
func Compute(req Request, opts Options) Result {
	trigger := req.Trigger
	card := req.Floating
	pad := opts.ViewportPadding
	offset := opts.Offset()

	preferredLeft := trigger.CenterX() - card.Width/2
	left := clamp(preferredLeft, pad, req.Viewport.Width-card.Width-pad)

	above := trigger.Top - card.Height - offset
	below := trigger.Bottom() + offset

	side := req.Side
	top := below
	if side == SideTop {
		top = above
	}

	switch {
	case side == SideTop && top < pad:
		side, top = SideBottom, below
	case side == SideBottom && top+card.Height > req.Viewport.Height-pad:
		side, top = SideTop, above
	}

	arrowLeft := clamp(trigger.CenterX()-left, opts.ArrowEdgeInset, card.Width-opts.ArrowEdgeInset)

	return Result{
		Top:       top + req.Scroll.Y,
		Left:      left + req.Scroll.X,
		ArrowLeft: arrowLeft,
		Side:      side,
	}
}

// clamp bounds n to [lo, hi]; lo wins when the range is empty.
func clamp(n, lo, hi float64) float64 {
	return max(lo, min(hi, n))
}
