package widgets

import (
	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TooltipOptions configures a Tooltip.
type TooltipOptions struct {
	Content string
	// Open delegates the open flag to the host when non-nil.
	Open         *bool
	DefaultOpen  bool
	Side         placement.Side
	Disabled     bool
	OnOpenChange func(open bool)
}

// Tooltip shows a short hint next to its trigger while the trigger is
// hovered or focused.
type Tooltip struct {
	hitbox
	keys     KeyMap
	trigger  ui.Renderable
	content  string
	side     placement.Side
	disabled bool
	focused  bool
	state    *overlay.Machine
	rows     int
}

// NewTooltip wraps trigger with a hint.
func NewTooltip(trigger ui.Renderable, opts TooltipOptions) *Tooltip {
	return &Tooltip{
		keys:     DefaultKeyMap(),
		trigger:  trigger,
		content:  opts.Content,
		side:     opts.Side,
		disabled: opts.Disabled,
		state: overlay.New(overlay.Options{
			Open:          opts.Open,
			DefaultOpen:   opts.DefaultOpen,
			CloseOnEscape: true,
			OnOpenChange:  opts.OnOpenChange,
		}),
	}
}

func (t *Tooltip) IsOpen() bool {
	return t.state.IsOpen()
}

// Sync applies the host's open flag.
func (t *Tooltip) Sync(open bool) {
	t.state.Sync(open)
}

// Focus opens the hint.
func (t *Tooltip) Focus() tea.Cmd {
	t.focused = true
	if !t.disabled {
		t.state.Show()
	}
	return nil
}

// Blur closes the hint.
func (t *Tooltip) Blur() {
	t.focused = false
	t.state.Hide()
}

func (t *Tooltip) Focused() bool {
	return t.focused
}

func (t *Tooltip) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, t.keys.Cancel) {
			t.state.Escape()
		}
	case tea.MouseMsg:
		if !isMotion(msg) && !isPress(msg) {
			return nil
		}
		_, y, inside := t.locate(msg)
		overTrigger := inside && y >= t.triggerTop() && y < t.triggerTop()+t.rows
		switch {
		case overTrigger:
			t.state.Show()
		case !t.focused:
			t.state.Hide()
		}
	}
	return nil
}

func (t *Tooltip) triggerTop() int {
	if t.state.IsOpen() && t.side == placement.SideTop {
		return int(t.size.Height) - t.rows
	}
	return 0
}

func (t *Tooltip) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *Tooltip) ViewWithContext(ctx components.RenderContext) string {
	trigger := components.Render(t.trigger, ctx)
	t.rows = lipgloss.Height(trigger)
	if !t.state.IsOpen() || t.content == "" {
		return t.measure(trigger)
	}

	theme := ctx.Theme
	bubble := components.Background(components.PaletteNeutral)(lipgloss.NewStyle(), theme).
		Padding(0, 1).
		Render(t.content)
	if t.side == placement.SideTop {
		return t.measure(lipgloss.JoinVertical(lipgloss.Left, bubble, " ▼", trigger))
	}
	return t.measure(lipgloss.JoinVertical(lipgloss.Left, trigger, " ▲", bubble))
}
