package widgets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckboxToggles(t *testing.T) {
	t.Parallel()

	var changes []bool
	c := NewCheckbox(ToggleOptions{
		Label:    "Accept terms",
		OnChange: func(v bool) { changes = append(changes, v) },
	})
	c.SetOrigin(0, 0)
	assert.Equal(t, "[ ] Accept terms", c.View())

	c.Update(keyRunes(" "))
	assert.False(t, c.Checked(), "keys need focus")

	c.Focus()
	c.Update(keyRunes(" "))
	assert.True(t, c.Checked())
	assert.Equal(t, "[x] Accept terms", c.View())

	c.Update(click(1, 0))
	assert.False(t, c.Checked())

	c.SetDisabled(true)
	c.Toggle()
	assert.False(t, c.Checked())
	assert.Equal(t, []bool{true, false}, changes)
}

func TestCheckboxError(t *testing.T) {
	t.Parallel()

	c := NewCheckbox(ToggleOptions{Label: "Accept terms", Error: "Required"})
	c.SetOrigin(0, 0)
	assert.Equal(t, "[ ] Accept terms\nRequired", c.View())

	c.Update(click(0, 1))
	assert.False(t, c.Checked(), "the message row is not clickable")
}

func TestSwitchDelegated(t *testing.T) {
	t.Parallel()

	on := false
	var requested []bool
	s := NewSwitch(ToggleOptions{
		Label:    "Wi-Fi",
		Checked:  &on,
		OnChange: func(v bool) { requested = append(requested, v) },
	})
	s.Focus()
	s.Update(keyType(tea.KeyEnter))
	assert.False(t, s.Checked())
	assert.Equal(t, []bool{true}, requested)
	assert.Contains(t, s.View(), "○──")

	s.Sync(true)
	assert.True(t, s.Checked())
	assert.Contains(t, s.View(), "──●")
}

func radioOptions() []RadioOption {
	return []RadioOption{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B", Disabled: true},
		{Value: "c", Label: "C"},
	}
}

func TestRadioGroupKeysSkipDisabled(t *testing.T) {
	t.Parallel()

	var changes []string
	r := NewRadioGroup(RadioGroupOptions{
		Options:      radioOptions(),
		DefaultValue: "a",
		OnChange:     func(v string) { changes = append(changes, v) },
	})
	r.Focus()
	r.Update(keyType(tea.KeyDown))
	assert.Equal(t, "c", r.Value())
	r.Update(keyType(tea.KeyRight))
	assert.Equal(t, "a", r.Value(), "movement wraps")
	r.Update(keyType(tea.KeyUp))
	assert.Equal(t, "c", r.Value())

	assert.False(t, r.Select(1))
	assert.Equal(t, []string{"c", "a", "c"}, changes)
}

func TestRadioGroupMouse(t *testing.T) {
	t.Parallel()

	vertical := NewRadioGroup(RadioGroupOptions{Options: radioOptions()})
	vertical.SetOrigin(0, 0)
	assert.Equal(t, "( ) A\n( ) B\n( ) C", vertical.View())
	vertical.Update(click(0, 1))
	assert.Empty(t, vertical.Value())
	vertical.Update(click(0, 2))
	assert.Equal(t, "c", vertical.Value())

	horizontal := NewRadioGroup(RadioGroupOptions{
		Options:   radioOptions(),
		Direction: components.DirectionHorizontal,
	})
	horizontal.SetOrigin(0, 0)
	assert.Equal(t, "( ) A   ( ) B   ( ) C", horizontal.View())
	horizontal.Update(click(17, 0))
	assert.Equal(t, "c", horizontal.Value())
	horizontal.Update(click(6, 0))
	assert.Equal(t, "c", horizontal.Value(), "separators are not options")
}

func TestRadioGroupDisabled(t *testing.T) {
	t.Parallel()

	r := NewRadioGroup(RadioGroupOptions{Options: radioOptions(), Disabled: true})
	r.Focus()
	r.Update(keyType(tea.KeyDown))
	assert.Empty(t, r.Value())
}

func TestInputTextOwned(t *testing.T) {
	t.Parallel()

	var changes []string
	in := NewInputText(InputTextOptions{
		Clearable: true,
		OnChange:  func(s string) { changes = append(changes, s) },
	})
	in.Update(keyRunes("x"))
	assert.Empty(t, in.Value(), "unfocused inputs ignore keys")

	in.Focus()
	in.Update(keyRunes("hi"))
	assert.Equal(t, "hi", in.Value())

	in.Update(keyType(tea.KeyCtrlU))
	assert.Empty(t, in.Value())
	assert.Equal(t, []string{"hi", ""}, changes)
}

func TestInputTextDelegated(t *testing.T) {
	t.Parallel()

	text := ""
	var requested []string
	in := NewInputText(InputTextOptions{
		Value:    &text,
		OnChange: func(s string) { requested = append(requested, s) },
	})
	in.Focus()
	in.Update(keyRunes("a"))
	assert.Equal(t, []string{"a"}, requested)
	assert.Empty(t, in.Value(), "edits wait for the host")

	in.Sync("a")
	assert.Equal(t, "a", in.Value())
	in.Update(keyRunes("b"))
	assert.Equal(t, []string{"a", "ab"}, requested)
}

func TestInputTextClearButton(t *testing.T) {
	t.Parallel()

	in := NewInputText(InputTextOptions{Clearable: true, DefaultValue: "query"})
	in.SetOrigin(0, 0)
	view := in.View()
	require.Contains(t, view, "×")

	in.Update(click(1, 1))
	assert.True(t, in.Focused(), "clicking the field focuses it")
	assert.Equal(t, "query", in.Value())

	in.Update(click(in.clearColumn(), 1))
	assert.Empty(t, in.Value())
}

func TestInputTextDisabled(t *testing.T) {
	t.Parallel()

	in := NewInputText(InputTextOptions{Disabled: true})
	assert.Nil(t, in.Focus())
	assert.False(t, in.Focused())
	in.Update(keyRunes("a"))
	assert.Empty(t, in.Value())
}

func TestInputTextMessage(t *testing.T) {
	t.Parallel()

	in := NewInputText(InputTextOptions{Label: "Email"})
	in.SetState(components.InputError, "Invalid address")
	view := in.View()
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "Invalid address")
}

func TestSearchBarSuggestions(t *testing.T) {
	t.Parallel()

	var selected, searched []string
	s := NewSearchBar(SearchBarOptions{
		Items:    []string{"apple", "banana", "cherry", "date"},
		OnSelect: func(item string) { selected = append(selected, item) },
		OnSearch: func(q string) { searched = append(searched, q) },
	})
	s.Focus()

	s.Update(keyRunes("an"))
	assert.Equal(t, []string{"banana"}, s.Suggestions())
	_, ok := s.Highlighted()
	assert.False(t, ok)

	s.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []string{"an"}, searched, "enter without a highlight searches")

	s.Update(keyType(tea.KeyDown))
	item, ok := s.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "banana", item)

	s.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []string{"banana"}, selected)
	assert.Equal(t, "banana", s.Value())
	assert.Empty(t, s.Suggestions())

	s.Update(keyType(tea.KeyEsc))
	assert.Empty(t, s.Value())
}

func TestSearchBarMouseSelect(t *testing.T) {
	t.Parallel()

	var selected []string
	s := NewSearchBar(SearchBarOptions{
		Items:    []string{"apple", "apricot", "banana"},
		OnSelect: func(item string) { selected = append(selected, item) },
	})
	s.SetOrigin(0, 0)
	s.Focus()
	s.Update(keyRunes("ap"))
	require.Len(t, s.Suggestions(), 2)
	assert.NotContains(t, s.Suggestions(), "banana")

	s.View()
	second := s.Suggestions()[1]
	s.Update(click(1, s.rows+1))
	assert.Equal(t, []string{second}, selected)
	assert.Equal(t, second, s.Value())
}

func TestSearchBarLimit(t *testing.T) {
	t.Parallel()

	s := NewSearchBar(SearchBarOptions{
		Items: []string{"a1", "a2", "a3", "a4"},
		Limit: 2,
	})
	s.Focus()
	s.Update(keyRunes("a"))
	assert.Len(t, s.Suggestions(), 2)
}

func TestInputNumberStepsAndClamps(t *testing.T) {
	t.Parallel()

	var changes []float64
	n := NewInputNumber(InputNumberOptions{
		DefaultValue: 9,
		Min:          Bound(0),
		Max:          Bound(10),
		Step:         2,
		OnChange:     func(v float64) { changes = append(changes, v) },
	})
	n.Increment()
	assert.InDelta(t, 10, n.Value(), 0.0001)
	n.Increment()
	n.Decrement()
	assert.InDelta(t, 8, n.Value(), 0.0001)

	n.Focus()
	n.Update(keyRunes("15"))
	require.True(t, n.Editing())
	assert.Equal(t, "15", n.Draft())
	n.Update(keyType(tea.KeyEnter))
	assert.False(t, n.Editing())
	assert.InDelta(t, 10, n.Value(), 0.0001)

	assert.Equal(t, []float64{10, 8, 10}, changes)
}

func TestInputNumberDraft(t *testing.T) {
	t.Parallel()

	n := NewInputNumber(InputNumberOptions{DefaultValue: 3, Precision: 1})
	n.Focus()

	n.Update(keyRunes("abc"))
	assert.False(t, n.Editing(), "letters do not start a draft")

	n.Update(keyType(tea.KeyEnter))
	require.True(t, n.Editing())
	assert.Equal(t, "3.0", n.Draft())
	n.Update(keyType(tea.KeyBackspace))
	n.Update(keyType(tea.KeyBackspace))
	n.Update(keyType(tea.KeyBackspace))
	n.Update(keyType(tea.KeyEnter))
	assert.InDelta(t, 3, n.Value(), 0.0001, "an empty draft reverts")

	n.Update(keyRunes("-2.25"))
	n.Update(keyType(tea.KeyEsc))
	assert.False(t, n.Editing())
	assert.InDelta(t, 3, n.Value(), 0.0001)

	n.Update(keyRunes("-2.25"))
	n.Blur()
	assert.InDelta(t, -2.3, n.Value(), 0.0001, "blur commits with rounding")
}

func TestInputNumberMouse(t *testing.T) {
	t.Parallel()

	n := NewInputNumber(InputNumberOptions{DefaultValue: 1, Min: Bound(0)})
	n.SetOrigin(0, 0)
	assert.Equal(t, "[−]  1  [+]", n.View())
	require.Len(t, n.spans, 3)

	n.Update(click(n.spans[2].from, 0))
	assert.InDelta(t, 2, n.Value(), 0.0001)
	n.Update(click(n.spans[0].from, 0))
	n.Update(click(n.spans[0].from, 0))
	n.Update(click(n.spans[0].from, 0))
	assert.InDelta(t, 0, n.Value(), 0.0001)

	n.Update(click(n.spans[1].from, 0))
	assert.True(t, n.Editing())
	n.Update(click(50, 5))
	assert.False(t, n.Editing())
}

func TestInputNumberDelegated(t *testing.T) {
	t.Parallel()

	v := 5.0
	var requested []float64
	n := NewInputNumber(InputNumberOptions{
		Value:    &v,
		OnChange: func(f float64) { requested = append(requested, f) },
	})
	n.Increment()
	assert.InDelta(t, 5, n.Value(), 0.0001)
	assert.Equal(t, []float64{6}, requested)
	n.Sync(6)
	assert.InDelta(t, 6, n.Value(), 0.0001)
}

func TestVerificationFieldTyping(t *testing.T) {
	t.Parallel()

	var completed []string
	f := NewVerificationField(VerificationFieldOptions{
		OnComplete: func(code string) { completed = append(completed, code) },
	})
	f.Focus()

	f.Update(keyRunes("12"))
	f.Update(keyType(tea.KeyBackspace))
	assert.Equal(t, "1", f.Value())
	assert.Equal(t, 1, f.Active())

	f.Update(keyRunes("2a34"))
	assert.Equal(t, "1234", f.Value())
	assert.Equal(t, 3, f.Active())
	assert.Equal(t, []string{"1234"}, completed)

	f.Update(keyType(tea.KeyLeft))
	f.Update(keyType(tea.KeyLeft))
	f.Update(keyType(tea.KeyBackspace))
	assert.Equal(t, "134", f.Value(), "deleting shifts the following digits")

	f.SetActive(1)
	f.Paste("9-9")
	assert.Equal(t, "1994", f.Value())
	assert.Equal(t, []string{"1234", "1994"}, completed)

	f.Update(keyType(tea.KeyCtrlU))
	assert.Empty(t, f.Value())
	assert.Equal(t, 0, f.Active())
}

func TestVerificationFieldPaste(t *testing.T) {
	t.Parallel()

	f := NewVerificationField(VerificationFieldOptions{
		Length: 6,
		Paste:  func() (string, error) { return "12 34", nil },
	})
	f.Focus()
	f.Update(keyType(tea.KeyCtrlV))
	assert.Equal(t, "1234", f.Value())

	f.Clear()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("987654321"), Paste: true})
	assert.Equal(t, "987654", f.Value(), "pasted codes are cut to the length")

	broken := NewVerificationField(VerificationFieldOptions{
		Paste: func() (string, error) { return "", errors.New("no clipboard") },
	})
	broken.Focus()
	broken.Update(keyType(tea.KeyCtrlV))
	assert.Empty(t, broken.Value())
}

func TestVerificationFieldDelegated(t *testing.T) {
	t.Parallel()

	code := "12"
	var requested []string
	f := NewVerificationField(VerificationFieldOptions{
		Value:    &code,
		OnChange: func(c string) { requested = append(requested, c) },
	})
	f.Focus()
	f.SetActive(2)
	f.Update(keyRunes("3"))
	assert.Equal(t, "12", f.Value())
	assert.Equal(t, []string{"123"}, requested)

	f.Sync("123x")
	assert.Equal(t, "123", f.Value())
}

func TestVerificationFieldDelegatedKeepsEveryTypedDigit(t *testing.T) {
	t.Parallel()

	code := ""
	var requested, completed []string
	f := NewVerificationField(VerificationFieldOptions{
		Value:      &code,
		OnChange:   func(c string) { requested = append(requested, c) },
		OnComplete: func(c string) { completed = append(completed, c) },
	})
	f.Focus()

	f.Update(keyRunes("1x234"))
	assert.Equal(t, []string{"1234"}, requested, "one change carrying every digit")
	assert.Equal(t, []string{"1234"}, completed)
	assert.Empty(t, f.Value(), "the host owns the code until it syncs")

	f.Sync(requested[0])
	assert.Equal(t, "1234", f.Value())
}

func TestVerificationFieldMouseAndView(t *testing.T) {
	t.Parallel()

	f := NewVerificationField(VerificationFieldOptions{
		Label:        "Code",
		DefaultValue: "12",
		HelperText:   "Check your inbox",
	})
	f.SetOrigin(0, 0)
	view := f.View()
	assert.Contains(t, view, "Code")
	assert.Contains(t, view, "Check your inbox")
	require.Len(t, f.spans, 4)

	f.Update(click(f.spans[0].from+1, 2))
	assert.True(t, f.Focused())
	assert.Equal(t, 0, f.Active())

	f.Update(click(f.spans[3].from+1, 2))
	assert.Equal(t, 2, f.Active(), "the cursor never passes the first empty cell")
}

func TestVerificationFieldDisabled(t *testing.T) {
	t.Parallel()

	f := NewVerificationField(VerificationFieldOptions{Disabled: true})
	f.Focus()
	f.Update(keyRunes("1"))
	f.Paste("1234")
	assert.Empty(t, f.Value())
}

func TestRatingHoverAndRate(t *testing.T) {
	t.Parallel()

	var changes []int
	r := NewRating(RatingOptions{
		DefaultValue:  2,
		Interactive:   true,
		OnValueChange: func(v int) { changes = append(changes, v) },
	})
	r.SetOrigin(0, 0)
	assert.Equal(t, "★ ★ ☆ ☆ ☆", r.View())

	r.Update(hover(4, 0))
	assert.Equal(t, 3, r.Hover())
	assert.Equal(t, "★ ★ ★ ☆ ☆", r.View())
	r.Update(hover(3, 0))
	assert.Equal(t, 0, r.Hover(), "gaps clear the preview")

	r.Update(click(8, 0))
	assert.Equal(t, 5, r.Value())

	r.Focus()
	r.Update(keyType(tea.KeyLeft))
	r.Update(keyRunes("1"))
	r.Update(keyType(tea.KeyLeft))
	assert.Equal(t, 1, r.Value(), "the lowest selectable score is one")
	assert.Equal(t, []int{5, 4, 1}, changes)
}

func TestRatingReadOnly(t *testing.T) {
	t.Parallel()

	r := NewRating(RatingOptions{DefaultValue: 9, Max: 3})
	assert.Equal(t, 3, r.Value(), "the score is clamped to max")
	r.Rate(1)
	r.SetOrigin(0, 0)
	r.View()
	r.Update(click(0, 0))
	assert.Equal(t, 3, r.Value())
	assert.Equal(t, "★ ★ ★", r.View())
}

func TestTextAreaCountsAndFlagsOverLimit(t *testing.T) {
	t.Parallel()

	var changes []string
	ta := NewTextArea(TextAreaOptions{
		Label:      "Notes",
		HelperText: "Optional",
		MaxLength:  5,
		OnChange:   func(text string) { changes = append(changes, text) },
	})
	view := ta.View()
	for _, want := range []string{"Notes", "0/5", "Optional"} {
		assert.Contains(t, view, want)
	}

	ta.Update(keyRunes("hi"))
	assert.Empty(t, ta.Value(), "keys need focus")

	ta.Focus()
	ta.Update(keyRunes("hi"))
	assert.Equal(t, "hi", ta.Value())
	assert.False(t, ta.OverLimit())

	ta.Update(keyRunes("there"))
	assert.Equal(t, 7, ta.Count())
	assert.True(t, ta.OverLimit(), "text past the limit is kept")
	view = ta.View()
	assert.Contains(t, view, "7/5")
	assert.Contains(t, view, LimitExceededMessage)
	assert.NotContains(t, view, "Optional")

	ta.Update(keyType(tea.KeyEnter))
	assert.Equal(t, "hithere\n", ta.Value())
	assert.Equal(t, []string{"hi", "hithere", "hithere\n"}, changes)
}

func TestTextAreaDelegated(t *testing.T) {
	t.Parallel()

	text := "draft"
	var requested []string
	ta := NewTextArea(TextAreaOptions{
		Value:    &text,
		OnChange: func(s string) { requested = append(requested, s) },
	})
	ta.Focus()
	ta.Update(keyRunes("!"))
	assert.Equal(t, "draft", ta.Value())
	assert.Equal(t, []string{"draft!"}, requested)

	ta.Sync("draft!")
	assert.Equal(t, "draft!", ta.Value())
	assert.Equal(t, 6, ta.Count())
	assert.Contains(t, ta.View(), "6/500")
}

func TestTextAreaStatesAndMouse(t *testing.T) {
	t.Parallel()

	ta := NewTextArea(TextAreaOptions{Label: "Bio", Required: true, Size: components.SizeSmall})
	ta.SetOrigin(0, 0)
	view := ta.View()
	assert.Contains(t, view, "Bio*")

	ta.Update(click(2, 2))
	assert.True(t, ta.Focused())

	ta.SetState(components.InputSuccess, "Looks good")
	view = ta.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "Looks good")

	ta.SetDisabled(true)
	assert.False(t, ta.Focused())
	assert.Nil(t, ta.Focus())
	ta.Update(keyRunes("x"))
	assert.Empty(t, ta.Value())
}

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(paths[i], []byte(name), 0o600))
	}
	return paths
}

func TestUploaderBrowsesAndSelects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, "a.txt", "b.png")

	var changes [][]string
	var opens []bool
	u := NewUploader(UploaderOptions{
		Label:        "Attachment",
		Directory:    dir,
		OnChange:     func(p []string) { changes = append(changes, p) },
		OnOpenChange: func(open bool) { opens = append(opens, open) },
	})
	assert.Equal(t, "Choose file", u.FileLabel())
	assert.Nil(t, u.Update(keyType(tea.KeyEnter)), "keys need focus")

	u.Focus()
	cmd := u.Update(keyType(tea.KeyEnter))
	require.True(t, u.IsOpen())
	require.NotNil(t, cmd)
	u.Update(cmd())
	assert.Contains(t, u.View(), "b.png")

	u.Update(keyType(tea.KeyEnter))
	assert.False(t, u.IsOpen(), "a single-file uploader closes after choosing")
	assert.Equal(t, []string{paths[0]}, u.Files())
	assert.Equal(t, "a.txt", u.FileLabel())

	cmd = u.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	u.Update(cmd())
	u.Update(keyType(tea.KeyDown))
	u.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []string{paths[1]}, u.Files(), "the new choice replaces the old one")

	cmd = u.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	u.Update(keyType(tea.KeyEsc))
	assert.False(t, u.IsOpen())

	u.Update(keyType(tea.KeyCtrlU))
	assert.Empty(t, u.Files())
	assert.Equal(t, [][]string{{paths[0]}, {paths[1]}, nil}, changes)
	assert.Equal(t, []bool{true, false, true, false, true, false}, opens)
}

func TestUploaderDropAddsPastedPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeFiles(t, dir, "my photo.png", "b.png", "notes.txt")

	u := NewUploader(UploaderOptions{
		Variant:      UploaderMedia,
		Multiple:     true,
		AllowedTypes: []string{".png"},
	})
	u.Focus()
	dropped := "'" + paths[0] + "' " + paths[1] + " " + paths[2] + " " + filepath.Join(dir, "missing.png")
	u.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(dropped), Paste: true})
	assert.Equal(t, paths[:2], u.Files())
	assert.Equal(t, "2 items", u.FileLabel())

	u.Add(paths[1])
	assert.Len(t, u.Files(), 2, "duplicates are ignored")
}

func TestUploaderFileLabels(t *testing.T) {
	t.Parallel()

	media := NewUploader(UploaderOptions{Variant: UploaderMedia})
	assert.Equal(t, "Choose File", media.FileLabel())
	media.Add("/x/averylongfilename.png")
	assert.Equal(t, "averylong...", media.FileLabel())
	media.Add("/x/short.png")
	assert.Equal(t, "short.png", media.FileLabel())

	compact := NewUploader(UploaderOptions{})
	compact.Add("/x/a.txt", "/x/b.txt")
	assert.Equal(t, []string{"/x/b.txt"}, compact.Files())

	multi := NewUploader(UploaderOptions{Variant: UploaderDropzone, Multiple: true})
	multi.Add("/x/a.txt", "/x/b.txt")
	assert.Equal(t, "2 files selected", multi.FileLabel())
	assert.Contains(t, multi.View(), dropzonePrompt)
}

func TestSplitDropped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"/a/b c.png", "d e", "f"}, splitDropped(`/a/b\ c.png "d e" 'f'`))
	assert.Equal(t, []string{"/x"}, splitDropped("  /x\n"))
	assert.Empty(t, splitDropped("   "))
}

func TestUploaderMouseAndDisabled(t *testing.T) {
	t.Parallel()

	u := NewUploader(UploaderOptions{Label: "File", Directory: t.TempDir()})
	u.SetOrigin(0, 0)
	u.View()

	assert.NotNil(t, u.Update(click(1, 1)))
	assert.True(t, u.IsOpen())
	assert.True(t, u.Focused())

	u.Update(click(100, 100))
	assert.False(t, u.IsOpen(), "clicking outside closes the browser")

	off := NewUploader(UploaderOptions{Disabled: true})
	off.Focus()
	assert.Nil(t, off.Update(keyType(tea.KeyEnter)))
	off.Add("/x/a.txt")
	assert.False(t, off.IsOpen())
	assert.Empty(t, off.Files())
}
