package widgets

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Bound returns a pointer to v for the optional InputNumber limits.
func Bound(v float64) *float64 {
	return &v
}

// InputNumberOptions configures an InputNumber.
type InputNumberOptions struct {
	// Value delegates the number to the host when non-nil.
	Value        *float64
	DefaultValue float64
	Min, Max     *float64
	// Step defaults to 1.
	Step      float64
	Precision int
	Disabled  bool
	OnChange  func(v float64)
}

// InputNumber is a stepper field. Typing a digit enters edit mode; Enter
// or Blur commits the draft and Escape cancels it. An empty or unparsable
// draft reverts to the current value.
type InputNumber struct {
	focusState
	hitbox
	keys      KeyMap
	number    *value.Value[float64]
	min, max  *float64
	step      float64
	precision int
	disabled  bool
	editing   bool
	draft     string
	spans     []span
}

func NewInputNumber(opts InputNumberOptions) *InputNumber {
	n := &InputNumber{
		keys:      DefaultKeyMap(),
		number:    value.New(opts.Value, opts.DefaultValue, opts.OnChange),
		min:       opts.Min,
		max:       opts.Max,
		step:      opts.Step,
		precision: max(opts.Precision, 0),
		disabled:  opts.Disabled,
	}
	if n.step <= 0 || math.IsNaN(n.step) {
		n.step = 1
	}
	return n
}

// Value is the current number.
func (n *InputNumber) Value() float64 {
	return n.number.Get()
}

// Sync applies the host's number.
func (n *InputNumber) Sync(v float64) {
	n.number.Sync(v)
}

// Editing reports whether a draft is being typed.
func (n *InputNumber) Editing() bool {
	return n.editing
}

func (n *InputNumber) Draft() string {
	return n.draft
}

// Clamp limits v to the configured range and precision.
func (n *InputNumber) Clamp(v float64) float64 {
	if n.min != nil {
		v = math.Max(v, *n.min)
	}
	if n.max != nil {
		v = math.Min(v, *n.max)
	}
	scale := math.Pow(10, float64(n.precision))
	return math.Round(v*scale) / scale
}

func (n *InputNumber) set(v float64) {
	if n.disabled {
		return
	}
	v = n.Clamp(v)
	if v != n.number.Get() {
		n.number.Request(v)
	}
}

// Increment adds one step.
func (n *InputNumber) Increment() {
	n.set(n.number.Get() + n.step)
}

// Decrement subtracts one step.
func (n *InputNumber) Decrement() {
	n.set(n.number.Get() - n.step)
}

func (n *InputNumber) atMin() bool {
	return n.min != nil && n.number.Get() <= *n.min
}

func (n *InputNumber) atMax() bool {
	return n.max != nil && n.number.Get() >= *n.max
}

// Edit enters edit mode with the current value as the draft.
func (n *InputNumber) Edit() {
	if n.disabled {
		return
	}
	n.editing = true
	n.draft = n.format(n.number.Get())
}

// Commit applies the draft and leaves edit mode.
func (n *InputNumber) Commit() {
	if !n.editing {
		return
	}
	n.editing = false
	draft := strings.TrimSpace(n.draft)
	n.draft = ""
	if draft == "" {
		return
	}
	v, err := strconv.ParseFloat(draft, 64)
	if err != nil || math.IsNaN(v) {
		return
	}
	n.set(v)
}

// Cancel drops the draft.
func (n *InputNumber) Cancel() {
	n.editing = false
	n.draft = ""
}

// accept appends the runes that can appear in a number and drops the rest.
func (n *InputNumber) accept(runes []rune) {
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && n.draft == "":
		case r == '.' && n.precision > 0 && !strings.Contains(n.draft, "."):
		default:
			continue
		}
		n.draft += string(r)
	}
}

func (n *InputNumber) format(v float64) string {
	return strconv.FormatFloat(v, 'f', n.precision, 64)
}

func (n *InputNumber) Blur() {
	n.Commit()
	n.focusState.Blur()
}

func (n *InputNumber) Update(msg tea.Msg) tea.Cmd {
	if n.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !n.focused {
			return nil
		}
		if n.editing {
			n.updateDraft(msg)
			return nil
		}
		switch {
		case key.Matches(msg, n.keys.Up, n.keys.Next):
			n.Increment()
		case key.Matches(msg, n.keys.Down, n.keys.Prev):
			n.Decrement()
		case key.Matches(msg, n.keys.Confirm):
			n.Edit()
		case msg.Type == tea.KeyRunes:
			n.draft = ""
			n.accept(msg.Runes)
			n.editing = n.draft != ""
		}
	case tea.MouseMsg:
		x, y, inside := n.locate(msg)
		if !isPress(msg) || !inside || y != 0 {
			if isPress(msg) && !inside {
				n.Commit()
			}
			return nil
		}
		switch spanAt(n.spans, x) {
		case 0:
			n.Commit()
			n.Decrement()
		case 1:
			if !n.editing {
				n.Edit()
			}
		case 2:
			n.Commit()
			n.Increment()
		}
	}
	return nil
}

func (n *InputNumber) updateDraft(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, n.keys.Confirm):
		n.Commit()
	case key.Matches(msg, n.keys.Cancel):
		n.Cancel()
	case key.Matches(msg, n.keys.Delete):
		if r := []rune(n.draft); len(r) > 0 {
			n.draft = string(r[:len(r)-1])
		}
	case msg.Type == tea.KeyRunes:
		n.accept(msg.Runes)
	}
}

func (n *InputNumber) View() string {
	return n.ViewWithContext(components.DefaultContext())
}

func (n *InputNumber) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	button := func(glyph string, off bool) string {
		style := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme)
		if off || n.disabled {
			style = lipgloss.NewStyle().Faint(true)
		}
		return style.Render("[" + glyph + "]")
	}

	shown := n.format(n.number.Get())
	if n.editing {
		shown = n.draft + "▏"
	}
	field := lipgloss.NewStyle().Bold(true).Width(max(lipgloss.Width(shown), 3)).Align(lipgloss.Center).Render(shown)
	if n.focused && !n.editing {
		field = lipgloss.NewStyle().Underline(true).Render(field)
	}
	if n.disabled {
		field = lipgloss.NewStyle().Faint(true).Render(field)
	}
	view, spans := layoutSpans([]string{button("−", n.atMin()), field, button("+", n.atMax())}, " ")
	n.spans = spans
	return n.measure(view)
}
