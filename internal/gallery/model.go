// Package gallery is the interactive catalog of loom components.
package gallery

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/frame"
	"github.com/alexisbeaulieu97/loom/internal/logger"
	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/ui/widgets"
)

// Options configures New.
type Options struct {
	Config config.Config
	Logger *logger.Logger
	// Width and Height seed the layout before the first WindowSizeMsg.
	Width, Height int
	// Today anchors the date picker. Defaults to time.Now.
	Today func() time.Time
	// Frame configures the onboarding tour's recomputation throttle.
	Frame []frame.Option
}

// Model is the gallery program.
type Model struct {
	cfg      config.Config
	log      *logger.Logger
	keys     keyMap
	help     help.Model
	today    func() time.Time
	frameOpt []frame.Option

	theme    components.Theme
	catalog  *catalog
	tabs     *widgets.Tabs
	tour     *widgets.OnboardingTooltip
	activity *activity

	// focus indexes the tabs (0) followed by the active page's controls.
	focus  int
	status string

	width  int
	height int
}

// New builds the gallery from cfg.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	today := opts.Today
	if today == nil {
		today = time.Now
	}
	m := &Model{
		log:      log.Component("gallery"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		today:    today,
		frameOpt: opts.Frame,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.activity = &activity{log: m.log}
	m.apply(opts.Config, "")
	return m
}

// apply rebuilds every page from cfg, keeping the visible page when it
// still exists.
func (m *Model) apply(cfg config.Config, current string) {
	m.cfg = cfg
	m.theme = themeFor(cfg)
	m.catalog = buildCatalog(cfg, m.activity, m.today)

	items := make([]widgets.TabItem, len(m.catalog.pages))
	for i, p := range m.catalog.pages {
		items[i] = widgets.TabItem{Value: p.id, Label: p.title}
	}
	m.tabs = widgets.NewTabs(widgets.TabsOptions{
		Items:        items,
		DefaultValue: current,
		OnChange:     func(v string) { m.activity.record("tabs", "page", v) },
	})

	m.tour = widgets.NewOnboardingTooltip(widgets.OnboardingOptions{
		Title:               "Welcome to loom",
		Description:         "Switch pages with ctrl+n and ctrl+p, or click a tab.",
		Footer:              ui.Static("enter or esc to dismiss"),
		Side:                cfg.PlacementSide(),
		Size:                components.SizeSmall,
		CloseOnEscape:       true,
		CloseOnOverlayClick: true,
		OnOpenChange:        func(open bool) { m.activity.record("tour", "open", open) },
		Frame:               m.frameOpt,
	})
	m.tour.SetTheme(m.theme)
	m.tour.SetViewport(m.width, m.height)

	m.focus = 0
	m.tabs.Focus()
}

// Init starts the animations.
func (m *Model) Init() tea.Cmd {
	m.log.Info("gallery started")
	return m.catalog.init()
}

func (m *Model) page() *page {
	for _, p := range m.catalog.pages {
		if p.id == m.tabs.Value() {
			return p
		}
	}
	return m.catalog.pages[0]
}

// focusables lists the focus ring of the visible page.
func (m *Model) focusables() []widgets.Widget {
	out := []widgets.Widget{m.tabs}
	for _, e := range m.page().controls() {
		out = append(out, e.control)
	}
	return out
}

func (m *Model) setFocus(i int) tea.Cmd {
	ring := m.focusables()
	if len(ring) == 0 {
		return nil
	}
	i = (i%len(ring) + len(ring)) % len(ring)
	for j, w := range ring {
		if j != i {
			w.Blur()
		}
	}
	m.focus = i
	return ring[i].Focus()
}

func (m *Model) focused() widgets.Widget {
	ring := m.focusables()
	if m.focus < 0 || m.focus >= len(ring) {
		return nil
	}
	return ring[m.focus]
}

// tourAnchor is the rectangle the tour points at: the tab row.
func (m *Model) tourAnchor() placement.Rect {
	width := lipgloss.Width(m.tabs.ViewWithContext(m.context()))
	return placement.Rect{Top: 0, Left: 0, Width: float64(max(1, width)), Height: 1}
}

// Status is the last widget event or reload notice.
func (m *Model) Status() string {
	if m.status != "" {
		return m.status
	}
	return m.activity.last
}

// Config is the settings currently applied.
func (m *Model) Config() config.Config {
	return m.cfg
}

func themeFor(cfg config.Config) components.Theme {
	if cfg.Dark() {
		return components.DarkTheme()
	}
	return components.LightTheme()
}

func (m *Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}
