package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

const entryIndent = 2

// View renders the tabs, the visible page, the status line and the help
// footer, then draws any open modal or tour on top.
func (m *Model) View() string {
	ctx := m.context()

	m.tabs.SetOrigin(0, 0)
	lines := strings.Split(m.tabs.ViewWithContext(ctx), "\n")
	lines = append(lines, "")

	label := components.TypographyStyle(m.theme, components.TypographyLabel)
	pad := strings.Repeat(" ", entryIndent)
	for _, e := range m.page().entries {
		lines = append(lines, label.Render(e.title))
		e.top = len(lines)
		if e.control != nil {
			e.control.SetOrigin(entryIndent, e.top)
		}
		bodyCtx := ctx
		if e.fill && m.width > entryIndent {
			bodyCtx = ctx.WithWidth(m.width - entryIndent)
		}
		body := components.Render(e.body(), bodyCtx)
		e.rows = lipgloss.Height(body)
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, pad+line)
		}
		lines = append(lines, "")
	}

	if status := m.Status(); status != "" {
		lines = append(lines, components.TypographyStyle(m.theme, components.TypographyCaption).Render(status))
	}
	lines = append(lines, m.help.View(m.keys))

	screen := strings.Join(lines, "\n")
	screen = m.catalog.modal.Overlay(screen, max(m.width, lipgloss.Width(screen)), max(m.height, len(lines)))
	return m.tour.Overlay(screen)
}
