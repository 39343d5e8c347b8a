package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the state of one step.
type StepStatus int

const (
	// StepAuto derives the status from the active index.
	StepAuto StepStatus = iota
	StepCompleted
	StepCurrent
	StepUpcoming
	StepDisabled
	StepError
)

func (s StepStatus) String() string {
	switch s {
	case StepCompleted:
		return "completed"
	case StepCurrent:
		return "current"
	case StepUpcoming:
		return "upcoming"
	case StepDisabled:
		return "disabled"
	case StepError:
		return "error"
	default:
		return "auto"
	}
}

func (s StepStatus) icon() string {
	switch s {
	case StepCompleted:
		return "✓"
	case StepCurrent:
		return "●"
	case StepError:
		return "✗"
	default:
		return "○"
	}
}

// Step is one stage of a Stepper.
type Step struct {
	Prefix      string
	Label       string
	Description string
	// Status overrides the derived status when set.
	Status StepStatus
}

// DeriveStatus resolves the status of step i given the active index.
// Explicit statuses win; otherwise steps before the active one are
// completed and steps after it upcoming.
func DeriveStatus(step Step, i, active int) StepStatus {
	switch {
	case step.Status != StepAuto:
		return step.Status
	case i < active:
		return StepCompleted
	case i == active:
		return StepCurrent
	default:
		return StepUpcoming
	}
}

// StepperOptions configures a Stepper.
type StepperOptions struct {
	Steps []Step
	// Active delegates the active index to the host when non-nil.
	Active        *int
	DefaultActive int
	Direction     components.Direction
	// Clickable lets the user jump to any step that is not disabled.
	Clickable    bool
	OnStepChange func(index int)
}

// Stepper shows progress through an ordered list of steps.
type Stepper struct {
	focusState
	hitbox
	keys      KeyMap
	steps     []Step
	active    *value.Value[int]
	direction components.Direction
	clickable bool
	spans     []span
	starts    []int
}

func NewStepper(opts StepperOptions) *Stepper {
	return &Stepper{
		keys:      DefaultKeyMap(),
		steps:     opts.Steps,
		active:    value.New(opts.Active, opts.DefaultActive, opts.OnStepChange),
		direction: opts.Direction,
		clickable: opts.Clickable,
	}
}

// Active is the active index.
func (s *Stepper) Active() int {
	return s.active.Get()
}

// Sync applies the host's active index.
func (s *Stepper) Sync(i int) {
	s.active.Sync(i)
}

// Statuses lists the derived status of every step.
func (s *Stepper) Statuses() []StepStatus {
	out := make([]StepStatus, len(s.steps))
	for i, st := range s.steps {
		out[i] = DeriveStatus(st, i, s.active.Get())
	}
	return out
}

// GoTo requests step i. Non-clickable steppers and disabled steps ignore
// it.
func (s *Stepper) GoTo(i int) bool {
	if !s.clickable || i < 0 || i >= len(s.steps) {
		return false
	}
	if DeriveStatus(s.steps[i], i, s.active.Get()) == StepDisabled {
		return false
	}
	if i != s.active.Get() {
		s.active.Request(i)
	}
	return true
}

func (s *Stepper) move(delta int) {
	for i := s.active.Get() + delta; i >= 0 && i < len(s.steps); i += delta {
		if s.GoTo(i) {
			return
		}
	}
}

func (s *Stepper) Update(msg tea.Msg) tea.Cmd {
	if !s.clickable {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return nil
		}
		switch {
		case key.Matches(msg, s.keys.Prev, s.keys.Up):
			s.move(-1)
		case key.Matches(msg, s.keys.Next, s.keys.Down):
			s.move(1)
		}
	case tea.MouseMsg:
		x, y, inside := s.locate(msg)
		if !isPress(msg) || !inside {
			return nil
		}
		if s.direction == components.DirectionHorizontal {
			if y == 0 {
				s.GoTo(spanAt(s.spans, x))
			}
			return nil
		}
		for i := len(s.starts) - 1; i >= 0; i-- {
			if y >= s.starts[i] {
				s.GoTo(i)
				return nil
			}
		}
	}
	return nil
}

func (s *Stepper) style(theme components.Theme, status StepStatus) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch status {
	case StepCompleted:
		return components.Foreground(components.PalettePrimary)(base, theme)
	case StepCurrent:
		return base.Bold(true)
	case StepDisabled:
		return base.Faint(true).Strikethrough(true)
	case StepError:
		return components.Foreground(components.PaletteDanger)(base, theme)
	default:
		return base.Faint(true)
	}
}

func (s *Stepper) title(st Step) string {
	if st.Prefix == "" {
		return st.Label
	}
	return st.Prefix + " " + st.Label
}

func (s *Stepper) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s *Stepper) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	statuses := s.Statuses()

	if s.direction == components.DirectionHorizontal {
		tokens := make([]string, len(s.steps))
		for i, st := range s.steps {
			tokens[i] = s.style(theme, statuses[i]).Render(statuses[i].icon() + " " + s.title(st))
		}
		view, spans := layoutSpans(tokens, " ── ")
		s.spans = spans
		return s.measure(view)
	}

	caption := components.TypographyStyle(theme, components.TypographyCaption)
	s.starts = s.starts[:0]
	lines := make([]string, 0, len(s.steps)*3)
	for i, st := range s.steps {
		s.starts = append(s.starts, len(lines))
		style := s.style(theme, statuses[i])
		lines = append(lines, style.Render(statuses[i].icon()+" "+s.title(st)))
		rail := "│ "
		if i == len(s.steps)-1 {
			rail = "  "
		}
		if st.Description != "" {
			lines = append(lines, rail+caption.Render(st.Description))
		}
		if i < len(s.steps)-1 {
			lines = append(lines, "│")
		}
	}
	return s.measure(strings.Join(lines, "\n"))
}

// SimpleStepper shows only the active step with a progress bar.
type SimpleStepper struct {
	steps  []Step
	active int
	width  int
}

// NewSimpleStepper creates a simple stepper. The active index is clamped to
// the steps.
func NewSimpleStepper(steps []Step, active, width int) *SimpleStepper {
	return &SimpleStepper{steps: steps, active: active, width: width}
}

// Active is the clamped active index.
func (s *SimpleStepper) Active() int {
	return clampInt(s.active, 0, max(len(s.steps)-1, 0))
}

func (s *SimpleStepper) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s *SimpleStepper) ViewWithContext(ctx components.RenderContext) string {
	if len(s.steps) == 0 {
		return ""
	}
	current := s.steps[s.Active()]
	head := lipgloss.NewStyle().Bold(true).Render(current.Label)
	if current.Prefix != "" {
		head = components.TypographyStyle(ctx.Theme, components.TypographyCaption).Render(current.Prefix) + " " + head
	}
	bar := components.NewProgress(len(s.steps), s.width).View(s.Active() + 1)
	return head + "\n" + bar
}
