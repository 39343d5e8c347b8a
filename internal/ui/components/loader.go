package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader is an animated spinner with an optional label. It is driven by the
// host program: call Tick once to start it and route spinner.TickMsg to
// Update.
type Loader struct {
	spin    spinner.Model
	label   string
	variant Variant
}

// NewLoader creates a dot spinner.
func NewLoader(label string) *Loader {
	return &Loader{
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		label:   label,
		variant: VariantPrimary,
	}
}

// Tick starts the animation.
func (l *Loader) Tick() tea.Cmd {
	return l.spin.Tick
}

// Update advances the spinner when msg belongs to it.
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spin, cmd = l.spin.Update(msg)
	return cmd
}

// Frame is the current glyph without styling.
func (l *Loader) Frame() string {
	return l.spin.View()
}

func (l *Loader) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *Loader) ViewWithContext(ctx RenderContext) string {
	glyph := Foreground(l.variant.Slot())(lipgloss.NewStyle(), ctx.Theme).Render(l.spin.View())
	if l.label == "" {
		return glyph
	}
	return glyph + " " + TypographyStyle(ctx.Theme, TypographyCaption).Render(l.label)
}

func (l *Loader) WithVariant(variant Variant) *Loader {
	l.variant = variant
	return l
}

// WithSpinner swaps the animation frames.
func (l *Loader) WithSpinner(s spinner.Spinner) *Loader {
	l.spin.Spinner = s
	return l
}

// Skeleton is a placeholder block drawn while content loads.
type Skeleton struct {
	BaseComponent
	width int
	lines int
}

// NewSkeleton creates a placeholder of width cells and lines rows. The last
// row is drawn shorter so the block reads as a paragraph.
func NewSkeleton(width, lines int) *Skeleton {
	s := &Skeleton{BaseComponent: NewBaseComponent(), width: max(width, 1), lines: max(lines, 1)}
	s.SetAppliers(Foreground(PaletteNeutral), Faint(true))
	return s
}

func (s *Skeleton) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Skeleton) ViewWithContext(ctx RenderContext) string {
	rows := make([]string, s.lines)
	for i := range rows {
		w := s.width
		if i == s.lines-1 && s.lines > 1 {
			w = max(1, s.width*2/3)
		}
		rows[i] = strings.Repeat("░", w)
	}
	return s.ComputeStyle(ctx.Theme).Render(strings.Join(rows, "\n"))
}

// Progress draws a completion bar with a count label.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a bar for total steps.
func NewProgress(total, width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return Progress{bar: bar, total: total}
}

// Ratio is completed/total clamped to [0, 1].
func (p Progress) Ratio(completed int) float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(completed)/float64(p.total)))
}

// View renders the bar for completed steps.
func (p Progress) View(completed int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", completed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(completed)))
}
