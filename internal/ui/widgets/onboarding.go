package widgets

import (
	"math"

	"github.com/alexisbeaulieu97/loom/internal/frame"
	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OnboardingOptions configures an OnboardingTooltip.
type OnboardingOptions struct {
	Title       string
	Description string
	Footer      ui.Renderable
	Side        placement.Side
	Size        components.Size
	// Open delegates the open flag to the host when non-nil.
	Open                *bool
	DefaultOpen         bool
	CloseOnEscape       bool
	CloseOnOverlayClick bool
	OnOpenChange        func(open bool)
	// Placement overrides placement.TerminalOptions.
	Placement *placement.Options
	// Frame configures the recomputation throttle.
	Frame []frame.Option
}

// OnboardingTooltip is a floating card anchored to a trigger rectangle. Its
// position is recomputed at most once per frame after the trigger, the
// viewport, the scroll offset or the content changes, and only while it is
// open.
type OnboardingTooltip struct {
	keys        KeyMap
	state       *overlay.Machine
	throttle    *frame.Throttle
	geometry    placement.Options
	title       string
	description string
	footer      ui.Renderable
	side        placement.Side
	size        components.Size
	theme       components.Theme

	trigger  placement.Rect
	viewport placement.Size
	scroll   placement.Point
	result   placement.Result
	panel    placement.Size
	placed   bool
	pending  tea.Cmd
}

// NewOnboardingTooltip creates an onboarding tooltip. A default-open
// tooltip has a recomputation pending; collect it with Init.
func NewOnboardingTooltip(opts OnboardingOptions) *OnboardingTooltip {
	o := &OnboardingTooltip{
		keys:        DefaultKeyMap(),
		throttle:    frame.New(opts.Frame...),
		geometry:    placement.TerminalOptions(),
		title:       opts.Title,
		description: opts.Description,
		footer:      opts.Footer,
		side:        opts.Side,
		size:        opts.Size,
		theme:       components.LightTheme(),
	}
	if opts.Placement != nil {
		o.geometry = *opts.Placement
	}
	o.state = overlay.New(overlay.Options{
		Open:                opts.Open,
		DefaultOpen:         opts.DefaultOpen,
		CloseOnEscape:       opts.CloseOnEscape,
		CloseOnOutsideClick: opts.CloseOnOverlayClick,
		OnOpenChange:        opts.OnOpenChange,
		OnEnter:             o.enter,
		OnExit:              o.exit,
	})
	return o
}

func (o *OnboardingTooltip) enter() {
	o.placed = false
	o.pending = o.throttle.Schedule()
}

func (o *OnboardingTooltip) exit(overlay.Reason) {
	o.throttle.Cancel()
	o.placed = false
	o.pending = nil
}

func (o *OnboardingTooltip) flush() tea.Cmd {
	cmd := o.pending
	o.pending = nil
	return cmd
}

// Init returns the recomputation scheduled by a default-open tooltip.
func (o *OnboardingTooltip) Init() tea.Cmd {
	return o.flush()
}

func (o *OnboardingTooltip) IsOpen() bool {
	return o.state.IsOpen()
}

// Show opens the tooltip and returns the first recomputation.
func (o *OnboardingTooltip) Show() tea.Cmd {
	o.state.Show()
	return o.flush()
}

// Hide closes the tooltip, dropping any pending recomputation.
func (o *OnboardingTooltip) Hide() {
	o.state.Hide()
}

// Sync applies the host's open flag.
func (o *OnboardingTooltip) Sync(open bool) tea.Cmd {
	o.state.Sync(open)
	return o.flush()
}

// SetTheme changes the theme used to measure and draw the card.
func (o *OnboardingTooltip) SetTheme(theme components.Theme) tea.Cmd {
	o.theme = theme
	return o.invalidate()
}

// SetTrigger anchors the tooltip to r, in viewport cells.
func (o *OnboardingTooltip) SetTrigger(r placement.Rect) tea.Cmd {
	o.trigger = r
	return o.invalidate()
}

// SetViewport records the visible area.
func (o *OnboardingTooltip) SetViewport(width, height int) tea.Cmd {
	o.viewport = placement.Size{Width: float64(width), Height: float64(height)}
	return o.invalidate()
}

// SetContent replaces the text, which may change the card size.
func (o *OnboardingTooltip) SetContent(title, description string) tea.Cmd {
	o.title, o.description = title, description
	return o.invalidate()
}

func (o *OnboardingTooltip) invalidate() tea.Cmd {
	if !o.state.IsOpen() {
		return nil
	}
	return o.throttle.Schedule()
}

// Position is the last computed placement. ok is false until a frame has
// been processed since the tooltip opened.
func (o *OnboardingTooltip) Position() (placement.Result, bool) {
	return o.result, o.placed
}

// Pending reports whether a recomputation is scheduled.
func (o *OnboardingTooltip) Pending() bool {
	return o.throttle.Pending()
}

func (o *OnboardingTooltip) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return o.SetViewport(msg.Width, msg.Height)
	case ScrollMsg:
		o.scroll = placement.Point{X: float64(msg.X), Y: float64(msg.Y)}
		return o.invalidate()
	case frame.Msg:
		if o.throttle.Due(msg) && o.state.IsOpen() {
			o.recompute()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, o.keys.Cancel):
			o.state.Escape()
		case key.Matches(msg, o.keys.Confirm):
			o.state.Hide()
		}
	case tea.MouseMsg:
		if isPress(msg) && o.placed && !o.screenRect().Contains(float64(msg.X), float64(msg.Y)) {
			o.state.OutsideClick()
		}
	}
	return nil
}

func (o *OnboardingTooltip) recompute() {
	body := o.body()
	o.panel = placement.Size{
		Width:  float64(lipgloss.Width(body)),
		Height: float64(lipgloss.Height(body)),
	}
	o.result = placement.Compute(placement.Request{
		Trigger:  o.trigger,
		Floating: o.panel,
		Side:     o.side,
		Viewport: o.viewport,
		Scroll:   o.scroll,
	}, o.geometry)
	o.placed = true
}

// screenRect is the card in viewport coordinates.
func (o *OnboardingTooltip) screenRect() placement.Rect {
	r := o.result.Rect(o.panel)
	r.Top -= o.scroll.Y
	r.Left -= o.scroll.X
	return r
}

func (o *OnboardingTooltip) body() string {
	ctx := components.DefaultContext().WithTheme(o.theme)
	width := components.SizeFor(o.theme, o.size).Width

	children := []ui.Renderable{}
	if o.title != "" {
		children = append(children, components.NewText(o.title).WithAppliers(components.Typography(components.TypographyLabel)))
	}
	if o.description != "" {
		children = append(children, components.NewText(o.description))
	}
	if o.footer != nil {
		children = append(children, o.footer)
	}
	card := components.NewContainer(children...).
		WithGap(1).
		WithWidth(width).
		WithAppliers(components.Border(components.BorderRounded), components.BorderColor(components.PalettePrimary), components.PaddingX(components.SpacingSmall))
	return card.ViewWithContext(ctx)
}

// View renders the card alone, or nothing while closed. Hosts that
// composite it themselves read its location from Position.
func (o *OnboardingTooltip) View() string {
	if !o.state.IsOpen() {
		return ""
	}
	return o.body()
}

// Overlay draws the card and its arrow over base at the computed position.
// base must be in the same coordinate space as the result, i.e. content
// coordinates when the host scrolls.
func (o *OnboardingTooltip) Overlay(base string) string {
	if !o.state.IsOpen() || !o.placed {
		return base
	}
	top := int(math.Round(o.result.Top))
	left := int(math.Round(o.result.Left))
	out := components.Composite(base, o.body(), left, top)

	arrowCol := left + int(math.Round(o.result.ArrowLeft))
	if o.result.Side == placement.SideTop {
		return components.Composite(out, "▼", arrowCol, top+int(o.panel.Height))
	}
	if top > 0 {
		out = components.Composite(out, "▲", arrowCol, top-1)
	}
	return out
}
