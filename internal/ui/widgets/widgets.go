// Package widgets contains loom's stateful components. Each widget is a
// small Bubble Tea model: the host routes messages to Update, renders View
// and receives changes through the callbacks given at construction.
//
// Stateful widgets follow the same ownership rule: when the options carry a
// non-nil value pointer the host owns the value, the widget only reports
// requested changes, and the host confirms them with Sync. Otherwise the
// widget keeps its own state.
package widgets

import (
	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Widget is the contract shared by every widget.
type Widget interface {
	ui.Renderable
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// ScrollMsg tells positioned widgets that the host scrolled its content.
type ScrollMsg struct {
	X, Y int
}

type focusState struct {
	focused bool
}

func (f *focusState) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *focusState) Blur() {
	f.focused = false
}

func (f *focusState) Focused() bool {
	return f.focused
}

// hitbox remembers where a widget was drawn so mouse events can be mapped
// to widget-local coordinates. The host supplies the origin; the size is
// measured on every render.
type hitbox struct {
	origin placement.Point
	size   placement.Size
	placed bool
}

// SetOrigin tells the widget where its top-left cell is on screen. Widgets
// without an origin ignore mouse events.
func (h *hitbox) SetOrigin(x, y int) {
	h.origin = placement.Point{X: float64(x), Y: float64(y)}
	h.placed = true
}

func (h *hitbox) measure(view string) string {
	h.size = placement.Size{
		Width:  float64(lipgloss.Width(view)),
		Height: float64(lipgloss.Height(view)),
	}
	return view
}

func (h *hitbox) bounds() placement.Rect {
	return placement.Rect{
		Top:    h.origin.Y,
		Left:   h.origin.X,
		Width:  h.size.Width,
		Height: h.size.Height,
	}
}

// locate returns msg in local coordinates and whether it falls inside the
// last rendered area.
func (h *hitbox) locate(msg tea.MouseMsg) (x, y int, inside bool) {
	if !h.placed {
		return 0, 0, false
	}
	x, y = msg.X-int(h.origin.X), msg.Y-int(h.origin.Y)
	return x, y, h.bounds().Contains(float64(msg.X), float64(msg.Y))
}

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func isMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}

// span is a clickable horizontal range in a rendered line.
type span struct {
	from, to int
	index    int
}

// layoutSpans joins tokens side by side with sep between them and records
// the column range of each token.
func layoutSpans(tokens []string, sep string) (string, []span) {
	spans := make([]span, 0, len(tokens))
	parts := make([]string, 0, len(tokens)*2)
	col := 0
	sepWidth := lipgloss.Width(sep)
	for i, tok := range tokens {
		if i > 0 && sep != "" {
			parts = append(parts, sep)
			col += sepWidth
		}
		w := lipgloss.Width(tok)
		spans = append(spans, span{from: col, to: col + w, index: i})
		parts = append(parts, tok)
		col += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), spans
}

func spanAt(spans []span, x int) int {
	for _, s := range spans {
		if x >= s.from && x < s.to {
			return s.index
		}
	}
	return -1
}

func clampInt(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
