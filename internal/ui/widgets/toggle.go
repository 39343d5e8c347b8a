package widgets

import (
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func checkMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func switchMark(on bool) string {
	if on {
		return "──●"
	}
	return "○──"
}

// ToggleOptions configures a Checkbox or a Switch.
type ToggleOptions struct {
	Label string
	// Checked delegates the state to the host when non-nil.
	Checked        *bool
	DefaultChecked bool
	Disabled       bool
	// Error puts the control in the error state and is shown below it.
	Error    string
	OnChange func(checked bool)
}

// toggle is the state shared by Checkbox and Switch.
type toggle struct {
	focusState
	hitbox
	keys     KeyMap
	label    string
	checked  *value.Value[bool]
	disabled bool
	err      string
}

func newToggle(opts ToggleOptions) toggle {
	return toggle{
		keys:     DefaultKeyMap(),
		label:    opts.Label,
		checked:  value.New(opts.Checked, opts.DefaultChecked, opts.OnChange),
		disabled: opts.Disabled,
		err:      opts.Error,
	}
}

// Checked reports the current state.
func (t *toggle) Checked() bool {
	return t.checked.Get()
}

// Toggle requests the opposite state. Disabled controls ignore it.
func (t *toggle) Toggle() {
	if t.disabled {
		return
	}
	t.checked.Request(!t.checked.Get())
}

// Sync applies the host's state.
func (t *toggle) Sync(checked bool) {
	t.checked.Sync(checked)
}

func (t *toggle) SetDisabled(disabled bool) {
	t.disabled = disabled
}

// SetError sets or clears the error message.
func (t *toggle) SetError(msg string) {
	t.err = msg
}

func (t *toggle) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.focused && key.Matches(msg, t.keys.Toggle, t.keys.Confirm) {
			t.Toggle()
		}
	case tea.MouseMsg:
		if _, y, inside := t.locate(msg); isPress(msg) && inside && y == 0 {
			t.Toggle()
		}
	}
	return nil
}

func (t *toggle) state() components.InputState {
	switch {
	case t.disabled:
		return components.InputDisabled
	case t.err != "":
		return components.InputError
	case t.focused:
		return components.InputFocus
	}
	return components.InputDefault
}

func (t *toggle) render(ctx components.RenderContext, mark string) string {
	theme := ctx.Theme
	style := lipgloss.NewStyle()
	switch t.state() {
	case components.InputDisabled:
		style = style.Faint(true)
	case components.InputError:
		style = components.Foreground(components.PaletteDanger)(style, theme)
	case components.InputFocus:
		style = components.Foreground(components.PalettePrimary)(style, theme).Bold(true)
	}
	line := style.Render(mark)
	if t.label != "" {
		line += " " + t.label
	}
	if t.err != "" {
		line += "\n" + components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), theme).Render(t.err)
	}
	return t.measure(line)
}

// Checkbox is a labelled two-state box.
type Checkbox struct {
	toggle
}

func NewCheckbox(opts ToggleOptions) *Checkbox {
	return &Checkbox{toggle: newToggle(opts)}
}

func (c *Checkbox) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx components.RenderContext) string {
	return c.render(ctx, checkMark(c.Checked()))
}

// Switch is a labelled on/off slider.
type Switch struct {
	toggle
}

func NewSwitch(opts ToggleOptions) *Switch {
	return &Switch{toggle: newToggle(opts)}
}

func (s *Switch) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s *Switch) ViewWithContext(ctx components.RenderContext) string {
	return s.render(ctx, switchMark(s.Checked()))
}

// RadioOption is one choice of a RadioGroup.
type RadioOption struct {
	Value    string
	Label    string
	Disabled bool
}

// RadioGroupOptions configures a RadioGroup.
type RadioGroupOptions struct {
	Options []RadioOption
	// Value delegates the selection to the host when non-nil.
	Value        *string
	DefaultValue string
	Disabled     bool
	Direction    components.Direction
	OnChange     func(value string)
}

// RadioGroup selects one value from a set of options. Moving with the
// arrow keys selects as it goes and skips disabled options.
type RadioGroup struct {
	focusState
	hitbox
	keys      KeyMap
	options   []RadioOption
	selected  *value.Value[string]
	disabled  bool
	direction components.Direction
	cursor    int
	spans     []span
}

func NewRadioGroup(opts RadioGroupOptions) *RadioGroup {
	r := &RadioGroup{
		keys:      DefaultKeyMap(),
		options:   opts.Options,
		selected:  value.New(opts.Value, opts.DefaultValue, opts.OnChange),
		disabled:  opts.Disabled,
		direction: opts.Direction,
	}
	r.cursor = max(r.indexOf(r.selected.Get()), 0)
	return r
}

func (r *RadioGroup) indexOf(v string) int {
	for i, o := range r.options {
		if o.Value == v {
			return i
		}
	}
	return -1
}

// Value is the selected option value, or "" when none is selected.
func (r *RadioGroup) Value() string {
	return r.selected.Get()
}

// Sync applies the host's selection.
func (r *RadioGroup) Sync(v string) {
	r.selected.Sync(v)
	if i := r.indexOf(v); i >= 0 {
		r.cursor = i
	}
}

// Select requests option i. Disabled options and groups ignore it.
func (r *RadioGroup) Select(i int) bool {
	if r.disabled || i < 0 || i >= len(r.options) || r.options[i].Disabled {
		return false
	}
	r.cursor = i
	if r.options[i].Value != r.selected.Get() {
		r.selected.Request(r.options[i].Value)
	}
	return true
}

func (r *RadioGroup) move(delta int) {
	n := len(r.options)
	for step := 1; step <= n; step++ {
		i := ((r.cursor+delta*step)%n + n) % n
		if r.Select(i) {
			return
		}
	}
}

func (r *RadioGroup) Update(msg tea.Msg) tea.Cmd {
	if r.disabled || len(r.options) == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !r.focused {
			return nil
		}
		switch {
		case key.Matches(msg, r.keys.Prev, r.keys.Up):
			r.move(-1)
		case key.Matches(msg, r.keys.Next, r.keys.Down):
			r.move(1)
		case key.Matches(msg, r.keys.Toggle, r.keys.Confirm):
			r.Select(r.cursor)
		}
	case tea.MouseMsg:
		x, y, inside := r.locate(msg)
		if !isPress(msg) || !inside {
			return nil
		}
		if r.direction == components.DirectionHorizontal {
			if y == 0 {
				r.Select(spanAt(r.spans, x))
			}
			return nil
		}
		r.Select(y)
	}
	return nil
}

func (r *RadioGroup) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r *RadioGroup) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	active := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	tokens := make([]string, len(r.options))
	for i, o := range r.options {
		mark := "( )"
		if o.Value == r.selected.Get() {
			mark = active.Render("(•)")
		}
		label := o.Label
		if label == "" {
			label = o.Value
		}
		tok := mark + " " + label
		switch {
		case o.Disabled || r.disabled:
			tok = lipgloss.NewStyle().Faint(true).Render(tok)
		case r.focused && i == r.cursor:
			tok = lipgloss.NewStyle().Bold(true).Render(tok)
		}
		tokens[i] = tok
	}
	if r.direction == components.DirectionHorizontal {
		view, spans := layoutSpans(tokens, "   ")
		r.spans = spans
		return r.measure(view)
	}
	return r.measure(lipgloss.JoinVertical(lipgloss.Left, tokens...))
}
