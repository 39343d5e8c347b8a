package widgets

import (
	"testing"
	"time"

	"github.com/alexisbeaulieu97/loom/internal/frame"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func hover(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

// instantTick fires frames immediately when the command runs.
func instantTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

var _ frame.TickFunc = instantTick

func TestLayoutSpans(t *testing.T) {
	t.Parallel()

	out, spans := layoutSpans([]string{"ab", "cde", "f"}, " ")
	assert.Equal(t, "ab cde f", out)
	require.Len(t, spans, 3)
	assert.Equal(t, span{from: 3, to: 6, index: 1}, spans[1])
	assert.Equal(t, 1, spanAt(spans, 4))
	assert.Equal(t, -1, spanAt(spans, 2), "separator")
	assert.Equal(t, -1, spanAt(spans, 99))
}

func TestHitboxRequiresOrigin(t *testing.T) {
	t.Parallel()

	var h hitbox
	h.measure("abc\ndef")
	_, _, inside := h.locate(click(1, 1))
	assert.False(t, inside)

	h.SetOrigin(10, 5)
	x, y, inside := h.locate(click(11, 6))
	assert.True(t, inside)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	_, _, inside = h.locate(click(13, 5))
	assert.False(t, inside)
}

func TestPaginationKeys(t *testing.T) {
	t.Parallel()

	var changes []int
	p := NewPagination(PaginationOptions{
		TotalPages:   10,
		DefaultPage:  5,
		SiblingCount: 1,
		OnChange:     func(page int) { changes = append(changes, page) },
	})

	p.Update(keyType(tea.KeyRight))
	require.Equal(t, 5, p.Page(), "keys are ignored without focus")

	p.Focus()
	p.Update(keyType(tea.KeyRight))
	require.Equal(t, 6, p.Page())
	p.Update(keyType(tea.KeyEnd))
	require.Equal(t, 10, p.Page())
	p.Update(keyType(tea.KeyRight))
	require.Equal(t, 10, p.Page(), "next is disabled on the last page")
	p.Update(keyRunes("3"))
	require.Equal(t, 3, p.Page())
	p.Update(keyType(tea.KeyHome))
	require.Equal(t, 1, p.Page())
	p.Update(keyType(tea.KeyLeft))
	require.Equal(t, 1, p.Page(), "previous is disabled on the first page")

	assert.Equal(t, []int{6, 10, 3, 1}, changes)
}

func TestPaginationDelegated(t *testing.T) {
	t.Parallel()

	page := 2
	var requested []int
	p := NewPagination(PaginationOptions{
		Page:       &page,
		TotalPages: 4,
		OnChange:   func(n int) { requested = append(requested, n) },
	})

	require.True(t, p.Next())
	assert.Equal(t, 2, p.Page(), "the host has not confirmed yet")
	assert.Equal(t, []int{3}, requested)

	p.Sync(3)
	assert.Equal(t, 3, p.Page())
}

func TestPaginationMouse(t *testing.T) {
	t.Parallel()

	p := NewPagination(PaginationOptions{TotalPages: 10, DefaultPage: 5, SiblingCount: 1})
	p.SetOrigin(0, 0)
	view := p.View()
	require.Contains(t, view, "...")

	p.Update(click(1, 0))
	require.Equal(t, 4, p.Page())

	view = p.View()
	p.Update(click(lipgloss.Width(view)-1, 0))
	require.Equal(t, 5, p.Page())
}

func TestPaginationTotalShrinks(t *testing.T) {
	t.Parallel()

	p := NewPagination(PaginationOptions{TotalPages: 10, DefaultPage: 9})
	p.SetTotalPages(4)
	assert.Equal(t, 4, p.Page())
	assert.Equal(t, 4, p.TotalPages())
}

func TestTimePickerDraftAndConfirm(t *testing.T) {
	t.Parallel()

	var changes []string
	tp, err := NewTimePicker(TimePickerOptions{
		Interval: 60,
		OnChange: func(label string) { changes = append(changes, label) },
	})
	require.NoError(t, err)
	require.Len(t, tp.Slots(), 24)

	tp.Focus()
	tp.Update(keyType(tea.KeyEnter))
	require.True(t, tp.IsOpen())
	require.Equal(t, "00.00", tp.Draft())

	tp.Update(keyType(tea.KeyDown))
	tp.Update(keyType(tea.KeyDown))
	require.Equal(t, "02.00", tp.Draft())
	assert.Empty(t, tp.Value(), "moving the draft does not select")

	tp.Update(keyType(tea.KeyEnter))
	assert.False(t, tp.IsOpen())
	assert.Equal(t, "02.00", tp.Value())

	tp.Open()
	assert.Equal(t, "02.00", tp.Draft(), "the draft starts at the selection")
	tp.Update(keyType(tea.KeyDown))
	tp.Update(keyType(tea.KeyEsc))
	assert.False(t, tp.IsOpen())
	assert.Equal(t, "02.00", tp.Value(), "escape drops the draft")

	assert.Equal(t, []string{"02.00"}, changes)
}

func TestTimePickerOutsideClickDiscardsDraft(t *testing.T) {
	t.Parallel()

	tp, err := NewTimePicker(TimePickerOptions{Interval: 60, DefaultValue: "08.00"})
	require.NoError(t, err)
	tp.SetOrigin(0, 0)

	tp.Open()
	tp.MoveDraft(3)
	tp.View()
	tp.Update(click(100, 100))

	assert.False(t, tp.IsOpen())
	assert.Equal(t, "08.00", tp.Value())
}

func TestTimePickerMouse(t *testing.T) {
	t.Parallel()

	tp, err := NewTimePicker(TimePickerOptions{Interval: 60})
	require.NoError(t, err)
	tp.SetOrigin(0, 0)
	tp.View()

	tp.Update(click(1, 0))
	require.True(t, tp.IsOpen())
	tp.View()

	tp.Update(click(1, tp.triggerRows+1))
	require.Equal(t, "01.00", tp.Draft())
	tp.Update(click(1, tp.triggerRows+DefaultVisibleSlots))

	assert.False(t, tp.IsOpen())
	assert.Equal(t, "01.00", tp.Value())
}

func TestTimePickerDelegated(t *testing.T) {
	t.Parallel()

	label := ""
	var requested []string
	tp, err := NewTimePicker(TimePickerOptions{
		Value:    &label,
		Interval: 30,
		OnChange: func(l string) { requested = append(requested, l) },
	})
	require.NoError(t, err)

	tp.Open()
	tp.MoveDraft(1)
	tp.Confirm()
	assert.Equal(t, []string{"00.30"}, requested)
	assert.Empty(t, tp.Value())

	tp.Sync("00.30")
	assert.Equal(t, "00.30", tp.Value())
}

func TestTimePickerInvalidInterval(t *testing.T) {
	t.Parallel()

	_, err := NewTimePicker(TimePickerOptions{Interval: -5})
	require.Error(t, err)
}

func TestTimePickerDisabled(t *testing.T) {
	t.Parallel()

	tp, err := NewTimePicker(TimePickerOptions{Disabled: true})
	require.NoError(t, err)
	tp.Focus()
	tp.Update(keyType(tea.KeyEnter))
	tp.Open()
	assert.False(t, tp.IsOpen())
}

func TestMonthGrid(t *testing.T) {
	t.Parallel()

	feb := MonthGrid(2024, time.February)
	require.Len(t, feb, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, feb[0])
	assert.Equal(t, []int{25, 26, 27, 28, 29, 0, 0}, feb[4])

	oct := MonthGrid(2023, time.October)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, oct[0])
	assert.Equal(t, []int{29, 30, 31, 0, 0, 0, 0}, oct[len(oct)-1])
}

func fixedToday() time.Time {
	return time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
}

func TestDatePickerKeys(t *testing.T) {
	t.Parallel()

	var picked []time.Time
	d := NewDatePicker(DatePickerOptions{
		Today:    fixedToday,
		OnChange: func(date time.Time) { picked = append(picked, date) },
	})
	assert.True(t, d.Value().IsZero())

	d.Focus()
	d.Update(keyType(tea.KeyEnter))
	require.True(t, d.IsOpen())
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d.Cursor())

	d.Update(keyType(tea.KeyRight))
	d.Update(keyType(tea.KeyDown))
	d.Update(keyType(tea.KeyEnter))

	want := time.Date(2024, time.March, 23, 0, 0, 0, 0, time.UTC)
	assert.False(t, d.IsOpen(), "picking closes the calendar")
	assert.Equal(t, want, d.Value())
	assert.Equal(t, []time.Time{want}, picked)

	d.Open()
	d.Update(keyType(tea.KeyPgDown))
	assert.Equal(t, time.April, d.Cursor().Month())
	d.Update(keyType(tea.KeyEsc))
	assert.False(t, d.IsOpen())
	assert.Equal(t, want, d.Value())
}

func TestDatePickerShiftMonthClampsDay(t *testing.T) {
	t.Parallel()

	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	d := NewDatePicker(DatePickerOptions{Today: fixedToday, DefaultValue: jan31})
	d.Open()
	d.ShiftMonth(1)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d.Cursor())
}

func TestDatePickerYearRange(t *testing.T) {
	t.Parallel()

	d := NewDatePicker(DatePickerOptions{Today: fixedToday})
	years := d.Years()
	require.Len(t, years, 2*YearSpan+1)
	assert.Equal(t, 2014, years[0])
	assert.Equal(t, 2034, years[len(years)-1])

	d.SetMonth(1900, time.June)
	assert.Equal(t, time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC), d.Cursor())
}

func TestDatePickerDelegated(t *testing.T) {
	t.Parallel()

	var selected time.Time
	var requested []time.Time
	d := NewDatePicker(DatePickerOptions{
		Value:    &selected,
		Today:    fixedToday,
		OnChange: func(date time.Time) { requested = append(requested, date) },
	})

	d.Open()
	d.Pick()
	require.Len(t, requested, 1)
	assert.True(t, d.Value().IsZero())

	d.Sync(requested[0].Add(5 * time.Hour))
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d.Value())
}

func TestDatePickerView(t *testing.T) {
	t.Parallel()

	d := NewDatePicker(DatePickerOptions{Today: fixedToday})
	assert.Contains(t, d.View(), "Select date")

	d.Open()
	view := d.View()
	assert.Contains(t, view, "March 2024")
	assert.Contains(t, view, "Su Mo Tu We Th Fr Sa")
}
