package widgets

import (
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// DefaultInputWidth is the text width of an input without an explicit one.
const DefaultInputWidth = 24

// InputTextOptions configures an InputText.
type InputTextOptions struct {
	Label       string
	Placeholder string
	// Value delegates the text to the host when non-nil.
	Value        *string
	DefaultValue string
	Clearable    bool
	Disabled     bool
	// State selects the default, error or success look. Focus and
	// disabled are derived.
	State     components.InputState
	Message   string
	CharLimit int
	Width     int
	OnChange  func(text string)
}

// InputText is a single-line text field. In delegated mode edits are
// reported through OnChange and only become visible after Sync.
type InputText struct {
	hitbox
	keys      KeyMap
	input     textinput.Model
	text      *value.Value[string]
	label     string
	clearable bool
	disabled  bool
	state     components.InputState
	message   string
	width     int
}

func NewInputText(opts InputTextOptions) *InputText {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = opts.Placeholder
	in.CharLimit = opts.CharLimit
	width := opts.Width
	if width <= 0 {
		width = DefaultInputWidth
	}
	in.Width = width

	t := &InputText{
		keys:      DefaultKeyMap(),
		input:     in,
		text:      value.New(opts.Value, opts.DefaultValue, opts.OnChange),
		label:     opts.Label,
		clearable: opts.Clearable,
		disabled:  opts.Disabled,
		state:     opts.State,
		message:   opts.Message,
		width:     width,
	}
	t.input.SetValue(t.text.Get())
	return t
}

// Value is the current text.
func (t *InputText) Value() string {
	return t.text.Get()
}

// Sync applies the host's text.
func (t *InputText) Sync(text string) {
	if t.text.Sync(text) && t.input.Value() != text {
		t.input.SetValue(text)
	}
}

// SetValue requests new text as if the user typed it.
func (t *InputText) SetValue(text string) {
	t.request(text)
}

// Clear requests the empty string.
func (t *InputText) Clear() {
	t.request("")
}

func (t *InputText) request(text string) {
	if text == t.text.Get() {
		return
	}
	t.text.Request(text)
	if t.text.Mode() == value.Owned {
		t.input.SetValue(text)
		return
	}
	t.input.SetValue(t.text.Get())
}

// SetState changes the validation look and message.
func (t *InputText) SetState(state components.InputState, message string) {
	t.state, t.message = state, message
}

func (t *InputText) SetDisabled(disabled bool) {
	t.disabled = disabled
	if disabled {
		t.input.Blur()
	}
}

func (t *InputText) Focus() tea.Cmd {
	if t.disabled {
		return nil
	}
	return t.input.Focus()
}

func (t *InputText) Blur() {
	t.input.Blur()
}

func (t *InputText) Focused() bool {
	return t.input.Focused()
}

func (t *InputText) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.input.Focused() {
			return nil
		}
		if t.clearable && key.Matches(msg, t.keys.Clear) {
			t.Clear()
			return nil
		}
	case tea.MouseMsg:
		x, y, inside := t.locate(msg)
		if !isPress(msg) || !inside {
			return nil
		}
		if t.clearable && t.text.Get() != "" && y == t.boxRow()+1 && x == t.clearColumn() {
			t.Clear()
			return nil
		}
		return t.Focus()
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before {
		t.text.Request(after)
		if t.text.Mode() == value.Delegated {
			t.input.SetValue(t.text.Get())
		}
	}
	return cmd
}

func (t *InputText) boxRow() int {
	if t.label != "" {
		return 1
	}
	return 0
}

// clearColumn is the column of the × inside the bordered box.
func (t *InputText) clearColumn() int {
	return 1 + 1 + t.width + 1
}

func (t *InputText) currentState() components.InputState {
	switch {
	case t.disabled:
		return components.InputDisabled
	case t.state == components.InputError || t.state == components.InputSuccess:
		return t.state
	case t.input.Focused():
		return components.InputFocus
	}
	return components.InputDefault
}

func (t *InputText) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *InputText) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	state := t.currentState()

	field := lipgloss.NewStyle().Width(t.width).MaxWidth(t.width).Render(t.input.View())
	if t.clearable {
		mark := " "
		if t.text.Get() != "" && !t.disabled {
			mark = "×"
		}
		field += " " + mark
	}
	box := components.InputStyle(theme, state).Render(field)

	out := box
	if t.label != "" {
		out = components.TypographyStyle(theme, components.TypographyLabel).Render(t.label) + "\n" + out
	}
	if t.message != "" {
		msgStyle := components.TypographyStyle(theme, components.TypographyCaption)
		switch state {
		case components.InputError:
			msgStyle = components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), theme)
		case components.InputSuccess:
			msgStyle = components.Foreground(components.PaletteSuccess)(lipgloss.NewStyle(), theme)
		}
		out += "\n" + msgStyle.Render(t.message)
	}
	return t.measure(out)
}

// SearchBarOptions configures a SearchBar.
type SearchBarOptions struct {
	Placeholder string
	// Items are the candidates matched against the query.
	Items []string
	// Limit caps the number of suggestions. Zero means five.
	Limit    int
	Width    int
	OnSearch func(query string)
	OnSelect func(item string)
}

const defaultSuggestionLimit = 5

// SearchBar is a clearable text field that suggests fuzzy matches from a
// fixed set of items.
type SearchBar struct {
	*InputText
	items    []string
	limit    int
	matches  fuzzy.Matches
	cursor   int
	rows     int
	up, down key.Binding
	onSearch func(query string)
	onSelect func(item string)
}

func NewSearchBar(opts SearchBarOptions) *SearchBar {
	s := &SearchBar{
		items:    opts.Items,
		limit:    opts.Limit,
		cursor:   -1,
		up:       key.NewBinding(key.WithKeys("up")),
		down:     key.NewBinding(key.WithKeys("down")),
		onSearch: opts.OnSearch,
		onSelect: opts.OnSelect,
	}
	if s.limit <= 0 {
		s.limit = defaultSuggestionLimit
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = "Search"
	}
	s.InputText = NewInputText(InputTextOptions{
		Placeholder: placeholder,
		Clearable:   true,
		Width:       opts.Width,
		OnChange:    s.refresh,
	})
	return s
}

func (s *SearchBar) refresh(query string) {
	s.cursor = -1
	if query == "" {
		s.matches = nil
		return
	}
	s.matches = fuzzy.Find(query, s.items)
	if len(s.matches) > s.limit {
		s.matches = s.matches[:s.limit]
	}
}

// Suggestions lists the current matches, best first.
func (s *SearchBar) Suggestions() []string {
	out := make([]string, len(s.matches))
	for i, m := range s.matches {
		out[i] = m.Str
	}
	return out
}

// Highlighted is the suggestion under the cursor, if any.
func (s *SearchBar) Highlighted() (string, bool) {
	if s.cursor < 0 || s.cursor >= len(s.matches) {
		return "", false
	}
	return s.matches[s.cursor].Str, true
}

func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	if mm, ok := msg.(tea.MouseMsg); ok && len(s.matches) > 0 {
		if _, y, inside := s.locate(mm); isPress(mm) && inside && y >= s.rows {
			s.cursor = y - s.rows
			s.choose()
			return nil
		}
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused() {
		return s.InputText.Update(msg)
	}
	switch {
	case key.Matches(km, s.up):
		s.cursor = max(s.cursor-1, -1)
	case key.Matches(km, s.down):
		s.cursor = min(s.cursor+1, len(s.matches)-1)
	case key.Matches(km, s.keys.Cancel):
		s.Clear()
	case key.Matches(km, s.keys.Confirm):
		if s.choose() {
			return nil
		}
		if s.onSearch != nil {
			s.onSearch(s.Value())
		}
	default:
		return s.InputText.Update(msg)
	}
	return nil
}

// choose fills the field with the highlighted suggestion.
func (s *SearchBar) choose() bool {
	item, ok := s.Highlighted()
	if !ok {
		return false
	}
	if s.onSelect != nil {
		s.onSelect(item)
	}
	s.SetValue(item)
	s.matches = nil
	return true
}

func (s *SearchBar) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s *SearchBar) ViewWithContext(ctx components.RenderContext) string {
	field := s.InputText.ViewWithContext(ctx)
	s.rows = lipgloss.Height(field)
	if len(s.matches) == 0 || !s.Focused() {
		return field
	}
	theme := ctx.Theme
	highlight := components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	rows := []string{field}
	for i, m := range s.matches {
		row := " " + m.Str + " "
		if i == s.cursor {
			row = highlight.Render(row)
		}
		rows = append(rows, row)
	}
	return s.measure(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
