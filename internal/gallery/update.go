package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/loom/internal/frame"
	"github.com/alexisbeaulieu97/loom/internal/ui/widgets"
)

// capturing reports whether w is an open popup that owns the keyboard.
func capturing(w widgets.Widget) bool {
	switch w := w.(type) {
	case *widgets.TimePicker:
		return w.IsOpen()
	case *widgets.DatePicker:
		return w.IsOpen()
	case *widgets.ButtonDropdown:
		return w.IsOpen()
	case *widgets.Uploader:
		return w.IsOpen()
	case *widgets.Navigation:
		return w.MenuOpen()
	}
	return false
}

// Update routes msg to the gallery and its widgets.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.tour.SetViewport(msg.Width, msg.Height)

	case ConfigReloadedMsg:
		return m, m.reload(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frame.Msg:
		return m, tea.Batch(m.tour.Update(msg), m.broadcast(msg))
	}

	return m, m.broadcast(msg)
}

func (m *Model) reload(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Error(msg.Err, "config reload failed")
		m.status = "config not reloaded: " + msg.Err.Error()
		return nil
	}
	if msg.Config == nil {
		return nil
	}
	current := m.tabs.Value()
	m.apply(*msg.Config, current)
	m.status = "config reloaded"
	m.log.Event("config_reloaded", map[string]any{"theme": msg.Config.Theme})
	return m.catalog.init()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	m.status = ""

	if m.tour.IsOpen() {
		return m.tour.Update(msg)
	}
	if m.catalog.modal.IsOpen() {
		return m.catalog.modal.Update(msg)
	}
	if capturing(m.focused()) {
		return m.routeToFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.NextPage):
		return m.shiftPage(1)
	case key.Matches(msg, m.keys.PrevPage):
		return m.shiftPage(-1)
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Tour):
		// The trigger is recorded without scheduling while the tour is closed.
		m.tour.SetTrigger(m.tourAnchor())
		return m.tour.Show()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.routeToFocused(msg)
}

// routeToFocused sends msg to the focused widget and follows a page switch
// made through the tabs.
func (m *Model) routeToFocused(msg tea.Msg) tea.Cmd {
	current := m.focused()
	if current == nil {
		return nil
	}
	before := m.tabs.Value()
	cmd := current.Update(msg)
	if m.tabs.Value() != before {
		m.focus = 0
	}
	return cmd
}

func (m *Model) shiftPage(delta int) tea.Cmd {
	pages := m.catalog.pages
	at := 0
	for i, p := range pages {
		if p.id == m.tabs.Value() {
			at = i
		}
	}
	next := pages[((at+delta)%len(pages)+len(pages))%len(pages)]
	m.tabs.Select(next.id)
	return m.setFocus(0)
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.cfg.Dark() {
		m.cfg.Theme = "light"
	} else {
		m.cfg.Theme = "dark"
	}
	m.theme = themeFor(m.cfg)
	m.activity.record("gallery", "theme", m.cfg.Theme)
	return m.tour.SetTheme(m.theme)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.tour.IsOpen() {
		return m.tour.Update(msg)
	}
	if m.catalog.modal.IsOpen() {
		return m.catalog.modal.Update(msg)
	}

	var cmds []tea.Cmd
	before := m.tabs.Value()
	cmds = append(cmds, m.tabs.Update(msg))
	if m.tabs.Value() != before {
		cmds = append(cmds, m.setFocus(0))
		return tea.Batch(cmds...)
	}

	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	for i, e := range m.page().controls() {
		cmds = append(cmds, e.control.Update(msg))
		if press && msg.Y >= e.top && msg.Y < e.top+e.rows && m.focus != i+1 {
			cmds = append(cmds, m.setFocus(i+1))
		}
	}
	return tea.Batch(cmds...)
}

// broadcast delivers timer and animation messages to every widget on every
// page; each one ignores what it did not schedule.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{m.catalog.loader.Update(msg)}
	for _, p := range m.catalog.pages {
		for _, e := range p.controls() {
			cmds = append(cmds, e.control.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}
