package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalOptions configures a Modal.
type ModalOptions struct {
	Title string
	Body  ui.Renderable
	Size  components.Size
	// Open delegates the open flag to the host when non-nil.
	Open            *bool
	DefaultOpen     bool
	CloseOnBackdrop bool
	// CheckboxLabel adds a checkbox above the actions when set.
	CheckboxLabel string
	ConfirmLabel  string
	CancelLabel   string
	OnOpenChange  func(open bool)
	OnConfirm     func(checked bool)
	OnCancel      func()
}

type modalControl int

const (
	modalCheckbox modalControl = iota
	modalCancel
	modalConfirm
)

// Modal is a dialog drawn over the host view. Escape always closes it; a
// click on the backdrop closes it only when enabled.
type Modal struct {
	focusState
	hitbox
	keys          KeyMap
	state         *overlay.Machine
	title         string
	body          ui.Renderable
	size          components.Size
	checkboxLabel string
	confirmLabel  string
	cancelLabel   string
	onConfirm     func(checked bool)
	onCancel      func()

	checked bool
	control modalControl

	checkboxRow int
	actionRow   int
	actions     []span
}

// NewModal creates a modal dialog.
func NewModal(opts ModalOptions) *Modal {
	m := &Modal{
		keys:          DefaultKeyMap(),
		title:         opts.Title,
		body:          opts.Body,
		size:          opts.Size,
		checkboxLabel: opts.CheckboxLabel,
		confirmLabel:  opts.ConfirmLabel,
		cancelLabel:   opts.CancelLabel,
		onConfirm:     opts.OnConfirm,
		onCancel:      opts.OnCancel,
		checkboxRow:   -1,
		actionRow:     -1,
	}
	if m.confirmLabel == "" {
		m.confirmLabel = "Confirm"
	}
	if m.cancelLabel == "" {
		m.cancelLabel = "Cancel"
	}
	m.state = overlay.New(overlay.Options{
		Open:                opts.Open,
		DefaultOpen:         opts.DefaultOpen,
		CloseOnEscape:       true,
		CloseOnOutsideClick: opts.CloseOnBackdrop,
		OnOpenChange:        opts.OnOpenChange,
		OnEnter:             m.reset,
	})
	m.reset()
	return m
}

func (m *Modal) reset() {
	m.checked = false
	m.control = modalConfirm
}

func (m *Modal) IsOpen() bool {
	return m.state.IsOpen()
}

func (m *Modal) Show() {
	m.state.Show()
}

func (m *Modal) Hide() {
	m.state.Hide()
}

// Sync applies the host's open flag.
func (m *Modal) Sync(open bool) {
	m.state.Sync(open)
}

// Checked reports the checkbox state.
func (m *Modal) Checked() bool {
	return m.checked
}

// SetChecked changes the checkbox state.
func (m *Modal) SetChecked(checked bool) {
	m.checked = checked
}

// Confirm runs the confirm action and closes the dialog.
func (m *Modal) Confirm() {
	if m.onConfirm != nil {
		m.onConfirm(m.checked)
	}
	m.state.Hide()
}

// Cancel runs the cancel action and closes the dialog.
func (m *Modal) Cancel() {
	if m.onCancel != nil {
		m.onCancel()
	}
	m.state.Hide()
}

func (m *Modal) controls() []modalControl {
	if m.checkboxLabel == "" {
		return []modalControl{modalCancel, modalConfirm}
	}
	return []modalControl{modalCheckbox, modalCancel, modalConfirm}
}

func (m *Modal) cycle(delta int) {
	list := m.controls()
	at := 0
	for i, c := range list {
		if c == m.control {
			at = i
		}
	}
	m.control = list[(at+delta+len(list))%len(list)]
}

func (m *Modal) activate() {
	switch m.control {
	case modalCheckbox:
		m.checked = !m.checked
	case modalCancel:
		m.Cancel()
	case modalConfirm:
		m.Confirm()
	}
}

func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.state.IsOpen() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.state.Escape()
		case key.Matches(msg, m.keys.Tab, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Toggle) && m.control == modalCheckbox:
			m.checked = !m.checked
		case key.Matches(msg, m.keys.Confirm):
			m.activate()
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		x, y, inside := m.locate(msg)
		if !inside {
			m.state.OutsideClick()
			return nil
		}
		m.click(x, y)
	}
	return nil
}

const modalInset = 2

func (m *Modal) click(x, y int) {
	switch y {
	case m.checkboxRow:
		m.control = modalCheckbox
		m.checked = !m.checked
	case m.actionRow:
		switch spanAt(m.actions, x-modalInset) {
		case 0:
			m.control = modalCancel
			m.Cancel()
		case 1:
			m.control = modalConfirm
			m.Confirm()
		}
	}
}

func (m *Modal) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the dialog box, or nothing while closed.
func (m *Modal) ViewWithContext(ctx components.RenderContext) string {
	if !m.state.IsOpen() {
		return ""
	}
	theme := ctx.Theme
	width := components.SizeFor(theme, m.size).Width
	inner := ctx.WithWidth(width - 2*modalInset)

	var lines []string
	if m.title != "" {
		lines = append(lines, components.NewHeader(m.title).WithLevel(2).ViewWithContext(inner), "")
	}
	if m.body != nil {
		lines = append(lines, components.Render(m.body, inner), "")
	}

	content := strings.Join(lines, "\n")
	rows := 0
	if content != "" {
		rows = lipgloss.Height(content)
	}

	m.checkboxRow = -1
	if m.checkboxLabel != "" {
		box := checkMark(m.checked) + " " + m.checkboxLabel
		if m.control == modalCheckbox {
			box = lipgloss.NewStyle().Bold(true).Render(box)
		}
		if content != "" {
			content += "\n"
		}
		content += box + "\n\n"
		m.checkboxRow = 1 + rows
		rows += 2
	}

	cancel := components.NeutralButton(m.cancelLabel).
		WithSize(components.SizeSmall).
		WithFocused(m.control == modalCancel).
		ViewWithContext(inner)
	confirm := components.PrimaryButton(m.confirmLabel).
		WithSize(components.SizeSmall).
		WithFocused(m.control == modalConfirm).
		ViewWithContext(inner)
	actions, spans := layoutSpans([]string{cancel, confirm}, "  ")
	m.actions = spans
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += actions
	m.actionRow = 1 + rows

	box := lipgloss.NewStyle().
		Border(components.BorderFor(theme, components.BorderRounded)).
		BorderForeground(theme.Palette.Primary.Base).
		Padding(0, modalInset-1).
		Width(width - 2).
		Render(content)
	return m.measure(box)
}

// Overlay centres the dialog over a base view of the given size and
// records its position for mouse handling.
func (m *Modal) Overlay(base string, width, height int) string {
	dialog := m.View()
	if dialog == "" {
		return base
	}
	x := max((width-lipgloss.Width(dialog))/2, 0)
	y := max((height-lipgloss.Height(dialog))/2, 0)
	m.SetOrigin(x, y)
	return components.Composite(base, dialog, x, y)
}
