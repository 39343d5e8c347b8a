package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultVerificationLength is the number of cells of a verification
// field without an explicit length.
const DefaultVerificationLength = 4

// VerificationFieldOptions configures a VerificationField.
type VerificationFieldOptions struct {
	Length int
	// Value delegates the code to the host when non-nil.
	Value        *string
	DefaultValue string
	Label        string
	HelperText   string
	Error        bool
	Disabled     bool
	// Paste reads the text inserted by the paste binding. Defaults to the
	// system clipboard.
	Paste      func() (string, error)
	OnChange   func(code string)
	OnComplete func(code string)
}

// VerificationField collects a fixed-length numeric code one digit per
// cell. The code is always a run of digits without gaps: deleting a digit
// shifts the following ones left.
type VerificationField struct {
	focusState
	hitbox
	keys       KeyMap
	length     int
	code       *value.Value[string]
	active     int
	label      string
	helper     string
	invalid    bool
	disabled   bool
	paste      func() (string, error)
	onComplete func(code string)
	spans      []span
	cellsRow   int
}

func NewVerificationField(opts VerificationFieldOptions) *VerificationField {
	length := opts.Length
	if length <= 0 {
		length = DefaultVerificationLength
	}
	var external *string
	if opts.Value != nil {
		v := digitsOnly(*opts.Value, length)
		external = &v
	}
	f := &VerificationField{
		keys:       DefaultKeyMap(),
		length:     length,
		code:       value.New(external, digitsOnly(opts.DefaultValue, length), opts.OnChange),
		label:      opts.Label,
		helper:     opts.HelperText,
		invalid:    opts.Error,
		disabled:   opts.Disabled,
		paste:      opts.Paste,
		onComplete: opts.OnComplete,
	}
	if f.paste == nil {
		f.paste = clipboard.ReadAll
	}
	return f
}

func digitsOnly(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() >= limit {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Length is the number of cells.
func (f *VerificationField) Length() int {
	return f.length
}

// Value is the digits entered so far.
func (f *VerificationField) Value() string {
	return f.code.Get()
}

// Active is the cell receiving input. It never passes the first empty
// cell.
func (f *VerificationField) Active() int {
	return clampInt(f.active, 0, min(len(f.code.Get()), f.length-1))
}

// SetActive moves the input cell.
func (f *VerificationField) SetActive(i int) {
	f.active = i
	f.active = f.Active()
}

// Sync applies the host's code.
func (f *VerificationField) Sync(code string) {
	f.code.Sync(digitsOnly(code, f.length))
}

// SetError toggles the error look.
func (f *VerificationField) SetError(invalid bool, helper string) {
	f.invalid, f.helper = invalid, helper
}

// Clear empties the code and returns to the first cell.
func (f *VerificationField) Clear() {
	f.active = 0
	f.update("")
}

func (f *VerificationField) update(next string) {
	if len(next) > f.length {
		next = next[:f.length]
	}
	if next == f.code.Get() {
		return
	}
	f.code.Request(next)
	if len(next) == f.length && f.onComplete != nil {
		f.onComplete(next)
	}
}

// Type puts digit d in the active cell and advances. Non-digits are
// ignored.
func (f *VerificationField) Type(d rune) {
	f.TypeRunes([]rune{d})
}

// TypeRunes types every digit of runes in order and reports the result as
// one change.
func (f *VerificationField) TypeRunes(runes []rune) {
	if f.disabled {
		return
	}
	code, i := f.code.Get(), f.Active()
	for _, d := range runes {
		if d < '0' || d > '9' {
			continue
		}
		if i < len(code) {
			code = code[:i] + string(d) + code[i+1:]
		} else if len(code) < f.length {
			code += string(d)
		}
		i = min(i+1, f.length-1)
	}
	f.active = i
	f.update(code)
}

// Backspace clears the active cell when it holds a digit, otherwise the
// cell before it.
func (f *VerificationField) Backspace() {
	if f.disabled {
		return
	}
	code, i := f.code.Get(), f.Active()
	switch {
	case i < len(code):
		f.update(code[:i] + code[i+1:])
	case i > 0:
		f.active = i - 1
		f.update(code[:i-1] + code[i:])
	}
}

// Paste writes the digits of text starting at the active cell.
func (f *VerificationField) Paste(text string) {
	if f.disabled {
		return
	}
	digits := digitsOnly(text, f.length)
	if digits == "" {
		return
	}
	code, i := f.code.Get(), f.Active()
	next := code[:i] + digits
	if end := i + len(digits); end < len(code) {
		next += code[end:]
	}
	f.active = min(i+len(digits), f.length-1)
	f.update(next)
}

func (f *VerificationField) Update(msg tea.Msg) tea.Cmd {
	if f.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !f.focused {
			return nil
		}
		switch {
		case msg.Paste:
			f.Paste(string(msg.Runes))
		case key.Matches(msg, f.keys.Paste):
			if text, err := f.paste(); err == nil {
				f.Paste(text)
			}
		case key.Matches(msg, f.keys.Clear):
			f.Clear()
		case key.Matches(msg, f.keys.Delete):
			f.Backspace()
		case msg.Type == tea.KeyLeft:
			f.SetActive(f.Active() - 1)
		case msg.Type == tea.KeyRight:
			f.SetActive(f.Active() + 1)
		case msg.Type == tea.KeyRunes:
			f.TypeRunes(msg.Runes)
		}
	case tea.MouseMsg:
		x, y, inside := f.locate(msg)
		if !isPress(msg) || !inside || y < f.cellsRow {
			return nil
		}
		if i := spanAt(f.spans, x); i >= 0 {
			f.focused = true
			f.SetActive(i)
		}
	}
	return nil
}

func (f *VerificationField) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

func (f *VerificationField) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	border := components.BorderFor(theme, components.BorderRounded)
	code := f.code.Get()
	active := f.Active()

	cells := make([]string, f.length)
	for i := range cells {
		style := lipgloss.NewStyle().Border(border).Width(3).Align(lipgloss.Center)
		switch {
		case f.disabled:
			style = style.Faint(true)
		case f.invalid:
			style = components.BorderColor(components.PaletteDanger)(style, theme)
		case f.focused && i == active:
			style = components.BorderColor(components.PalettePrimary)(style, theme)
		default:
			style = style.BorderForeground(theme.Palette.Neutral.Muted)
		}
		digit := " "
		if i < len(code) {
			digit = code[i : i+1]
		}
		cells[i] = style.Render(digit)
	}
	row, spans := layoutSpans(cells, "  ")
	f.spans = spans

	out := row
	f.cellsRow = 0
	if f.label != "" {
		out = components.TypographyStyle(theme, components.TypographyLabel).Render(f.label) + "\n" + out
		f.cellsRow = 1
	}
	if f.helper != "" {
		style := components.TypographyStyle(theme, components.TypographyCaption)
		if f.invalid {
			style = components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), theme)
		}
		out += "\n" + style.Render(f.helper)
	}
	return f.measure(out)
}
