package widgets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTextAreaMaxLength is the counter limit of a text area without an
// explicit one.
const DefaultTextAreaMaxLength = 500

// LimitExceededMessage replaces the helper text of an over-limit text
// area.
const LimitExceededMessage = "Character limit exceeded"

// TextAreaOptions configures a TextArea.
type TextAreaOptions struct {
	Label       string
	Placeholder string
	// Value delegates the text to the host when non-nil.
	Value        *string
	DefaultValue string
	// Size picks the number of visible rows.
	Size       components.Size
	State      components.InputState
	HelperText string
	Required   bool
	Disabled   bool
	// MaxLength is the counter limit. Longer text is kept but shown in the
	// error state.
	MaxLength int
	Width     int
	OnChange  func(text string)
}

// TextArea is a multi-line text field with a character counter.
type TextArea struct {
	hitbox
	area      textarea.Model
	text      *value.Value[string]
	label     string
	helper    string
	required  bool
	disabled  bool
	state     components.InputState
	maxLength int
	width     int
}

func textAreaRows(size components.Size) int {
	switch size {
	case components.SizeSmall:
		return 3
	case components.SizeLarge:
		return 8
	default:
		return 5
	}
}

func NewTextArea(opts TextAreaOptions) *TextArea {
	width := opts.Width
	if width <= 0 {
		width = DefaultInputWidth + 16
	}
	area := textarea.New()
	area.Prompt = ""
	area.ShowLineNumbers = false
	area.Placeholder = opts.Placeholder
	area.CharLimit = 0
	area.SetWidth(width)
	area.SetHeight(textAreaRows(opts.Size))

	t := &TextArea{
		area:      area,
		text:      value.New(opts.Value, opts.DefaultValue, opts.OnChange),
		label:     opts.Label,
		helper:    opts.HelperText,
		required:  opts.Required,
		disabled:  opts.Disabled,
		state:     opts.State,
		maxLength: opts.MaxLength,
		width:     width,
	}
	if t.maxLength <= 0 {
		t.maxLength = DefaultTextAreaMaxLength
	}
	t.area.SetValue(t.text.Get())
	return t
}

// Value is the current text.
func (t *TextArea) Value() string {
	return t.text.Get()
}

// Count is the number of characters in the text.
func (t *TextArea) Count() int {
	return utf8.RuneCountInString(t.text.Get())
}

// OverLimit reports whether the text is longer than the limit.
func (t *TextArea) OverLimit() bool {
	return t.Count() > t.maxLength
}

// Sync applies the host's text.
func (t *TextArea) Sync(text string) {
	if t.text.Sync(text) && t.area.Value() != text {
		t.area.SetValue(text)
	}
}

// SetValue requests new text as if the user typed it.
func (t *TextArea) SetValue(text string) {
	if text == t.text.Get() {
		return
	}
	t.text.Request(text)
	t.area.SetValue(t.text.Get())
}

// SetState changes the validation look and helper text.
func (t *TextArea) SetState(state components.InputState, helper string) {
	t.state, t.helper = state, helper
}

func (t *TextArea) SetDisabled(disabled bool) {
	t.disabled = disabled
	if disabled {
		t.area.Blur()
	}
}

func (t *TextArea) Focus() tea.Cmd {
	if t.disabled {
		return nil
	}
	return t.area.Focus()
}

func (t *TextArea) Blur() {
	t.area.Blur()
}

func (t *TextArea) Focused() bool {
	return t.area.Focused()
}

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	if mm, ok := msg.(tea.MouseMsg); ok {
		if _, _, inside := t.locate(mm); isPress(mm) && inside {
			return t.Focus()
		}
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok && !t.area.Focused() {
		return nil
	}

	before := t.area.Value()
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	if after := t.area.Value(); after != before {
		t.text.Request(after)
		if t.text.Mode() == value.Delegated {
			t.area.SetValue(t.text.Get())
		}
	}
	return cmd
}

func (t *TextArea) currentState() components.InputState {
	switch {
	case t.disabled:
		return components.InputDisabled
	case t.OverLimit():
		return components.InputError
	case t.state == components.InputError || t.state == components.InputSuccess:
		return t.state
	case t.area.Focused():
		return components.InputFocus
	}
	return components.InputDefault
}

func (t *TextArea) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *TextArea) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	state := t.currentState()

	danger := components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), theme)
	caption := components.TypographyStyle(theme, components.TypographyCaption)

	header := ""
	if t.label != "" {
		labelStyle := components.TypographyStyle(theme, components.TypographyLabel)
		if state == components.InputError {
			labelStyle = danger
		}
		header = labelStyle.Render(t.label)
		if t.required {
			header += danger.Render("*")
		}
	}
	switch state {
	case components.InputError:
		header = joinEdges(header, danger.Render("!"), t.width)
	case components.InputSuccess:
		header = joinEdges(header, components.Foreground(components.PaletteSuccess)(lipgloss.NewStyle(), theme).Render("✓"), t.width)
	}

	counterStyle := caption
	if t.OverLimit() {
		counterStyle = danger.Bold(true)
	}
	counter := lipgloss.NewStyle().Width(t.width).Align(lipgloss.Right).
		Render(counterStyle.Render(fmt.Sprintf("%d/%d", t.Count(), t.maxLength)))

	body := lipgloss.JoinVertical(lipgloss.Left, t.area.View(), counter)
	if header != "" {
		body = header + "\n" + body
	}
	out := components.InputStyle(theme, state).Render(body)

	helper := t.helper
	if t.OverLimit() {
		helper = LimitExceededMessage
	}
	if helper != "" {
		style := caption
		switch state {
		case components.InputError:
			style = danger
		case components.InputSuccess:
			style = components.Foreground(components.PaletteSuccess)(lipgloss.NewStyle(), theme)
		}
		out += "\n" + style.Render(helper)
	}
	return t.measure(out)
}

// joinEdges places left and right at the two ends of a line of width.
func joinEdges(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
