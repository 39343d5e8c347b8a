package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// YearSpan is how many years either side of today a date picker offers.
const YearSpan = 10

// MonthGrid lays out a month as weeks starting on Sunday. Blank cells are
// zero; the first week is padded with as many blanks as the weekday of the
// 1st.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]int, int(first.Weekday()), int(first.Weekday())+days)
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, 0)
	}

	weeks := make([][]int, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// DatePickerOptions configures a DatePicker.
type DatePickerOptions struct {
	// Value delegates the selected date to the host when non-nil. The zero
	// time means no selection.
	Value        *time.Time
	DefaultValue time.Time
	// Today anchors the initial month and the year range. Defaults to
	// time.Now.
	Today        func() time.Time
	Placeholder  string
	OnChange     func(date time.Time)
	OnOpenChange func(open bool)
}

// DatePicker selects a calendar day from a month grid.
type DatePicker struct {
	focusState
	hitbox
	keys        KeyMap
	selected    *value.Value[time.Time]
	calendar    *overlay.Machine
	today       time.Time
	cursor      time.Time
	placeholder string
	triggerRows int
}

// NewDatePicker creates a date picker.
func NewDatePicker(opts DatePickerOptions) *DatePicker {
	now := time.Now
	if opts.Today != nil {
		now = opts.Today
	}
	var external *time.Time
	if opts.Value != nil {
		v := dateOnly(*opts.Value)
		external = &v
	}
	d := &DatePicker{
		keys:        DefaultKeyMap(),
		selected:    value.New(external, dateOnly(opts.DefaultValue), opts.OnChange),
		today:       dateOnly(now()),
		placeholder: opts.Placeholder,
	}
	if d.placeholder == "" {
		d.placeholder = "Select date"
	}
	d.calendar = overlay.New(overlay.Options{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		OnOpenChange:        opts.OnOpenChange,
		OnEnter:             d.resetCursor,
	})
	d.resetCursor()
	return d
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Value is the selected date, zero when unset.
func (d *DatePicker) Value() time.Time {
	return d.selected.Get()
}

// Cursor is the highlighted day.
func (d *DatePicker) Cursor() time.Time {
	return d.cursor
}

// Years lists the selectable years.
func (d *DatePicker) Years() []int {
	years := make([]int, 0, 2*YearSpan+1)
	for y := d.today.Year() - YearSpan; y <= d.today.Year()+YearSpan; y++ {
		years = append(years, y)
	}
	return years
}

func (d *DatePicker) IsOpen() bool {
	return d.calendar.IsOpen()
}

func (d *DatePicker) Open() {
	d.calendar.Show()
}

func (d *DatePicker) Close() {
	d.calendar.Hide()
}

// Sync applies the host's date.
func (d *DatePicker) Sync(date time.Time) {
	d.selected.Sync(dateOnly(date))
}

func (d *DatePicker) resetCursor() {
	if v := d.selected.Get(); !v.IsZero() {
		d.cursor = v
		return
	}
	d.cursor = d.today
}

// MoveCursor shifts the highlight by days, staying inside the year range.
func (d *DatePicker) MoveCursor(days int) {
	d.setCursor(d.cursor.AddDate(0, 0, days))
}

// ShiftMonth moves the highlight by months, keeping the day where the
// target month allows.
func (d *DatePicker) ShiftMonth(months int) {
	y, m, day := d.cursor.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	d.setCursor(time.Date(first.Year(), first.Month(), min(day, last), 0, 0, 0, 0, time.UTC))
}

// SetMonth jumps to a month and year. Years outside the range are clamped.
func (d *DatePicker) SetMonth(year int, month time.Month) {
	years := d.Years()
	year = clampInt(year, years[0], years[len(years)-1])
	d.setCursor(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

func (d *DatePicker) setCursor(t time.Time) {
	years := d.Years()
	lo := time.Date(years[0], time.January, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(years[len(years)-1], time.December, 31, 0, 0, 0, 0, time.UTC)
	switch {
	case t.Before(lo):
		t = lo
	case t.After(hi):
		t = hi
	}
	d.cursor = t
}

// Pick selects the highlighted day and closes the calendar.
func (d *DatePicker) Pick() {
	if !d.cursor.Equal(d.selected.Get()) {
		d.selected.Request(d.cursor)
	}
	d.calendar.Hide()
}

func (d *DatePicker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		if !d.calendar.IsOpen() {
			if key.Matches(msg, d.keys.Confirm, d.keys.Toggle, d.keys.Down) {
				d.Open()
			}
			return nil
		}
		switch {
		case key.Matches(msg, d.keys.Cancel):
			d.calendar.Escape()
		case key.Matches(msg, d.keys.Prev):
			d.MoveCursor(-1)
		case key.Matches(msg, d.keys.Next):
			d.MoveCursor(1)
		case key.Matches(msg, d.keys.Up):
			d.MoveCursor(-7)
		case key.Matches(msg, d.keys.Down):
			d.MoveCursor(7)
		case key.Matches(msg, d.keys.PrevPage):
			d.ShiftMonth(-1)
		case key.Matches(msg, d.keys.NextPage):
			d.ShiftMonth(1)
		case key.Matches(msg, d.keys.Confirm, d.keys.Toggle):
			d.Pick()
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		x, y, inside := d.locate(msg)
		if !inside {
			d.calendar.OutsideClick()
			return nil
		}
		d.click(x, y)
	}
	return nil
}

const (
	calendarHeaderRows = 2
	calendarCellWidth  = 3
)

func (d *DatePicker) click(x, y int) {
	if y < d.triggerRows {
		d.calendar.Toggle()
		return
	}
	if !d.calendar.IsOpen() {
		return
	}
	row := y - d.triggerRows
	if row == 0 {
		switch {
		case x < 2:
			d.ShiftMonth(-1)
		case x >= 7*calendarCellWidth-2:
			d.ShiftMonth(1)
		}
		return
	}
	week := row - calendarHeaderRows
	weeks := MonthGrid(d.cursor.Year(), d.cursor.Month())
	col := x / calendarCellWidth
	if week < 0 || week >= len(weeks) || col >= 7 {
		return
	}
	if day := weeks[week][col]; day > 0 {
		d.setCursor(time.Date(d.cursor.Year(), d.cursor.Month(), day, 0, 0, 0, 0, time.UTC))
		d.Pick()
	}
}

func (d *DatePicker) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *DatePicker) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	state := components.InputDefault
	if d.focused {
		state = components.InputFocus
	}
	label := components.TypographyStyle(theme, components.TypographyCaption).Render(d.placeholder)
	if v := d.selected.Get(); !v.IsZero() {
		label = v.Format("2006-01-02")
	}
	trigger := components.InputStyle(theme, state).Render("▦ " + label)
	d.triggerRows = lipgloss.Height(trigger)
	if !d.calendar.IsOpen() {
		return d.measure(trigger)
	}
	return d.measure(trigger + "\n" + d.calendarView(theme))
}

func (d *DatePicker) calendarView(theme components.Theme) string {
	width := 7 * calendarCellWidth
	title := fmt.Sprintf("%s %d", d.cursor.Month(), d.cursor.Year())
	gap := max(width-lipgloss.Width(title)-4, 2)
	header := "‹ " + strings.Repeat(" ", gap/2) + title + strings.Repeat(" ", gap-gap/2) + " ›"

	caption := components.TypographyStyle(theme, components.TypographyCaption)
	cursor := components.Background(components.PalettePrimary)(lipgloss.NewStyle(), theme)
	today := lipgloss.NewStyle().Underline(true)
	chosen := components.Foreground(components.PalettePrimary)(lipgloss.NewStyle(), theme).Bold(true)

	lines := []string{header, caption.Render("Su Mo Tu We Th Fr Sa")}
	sel := d.selected.Get()
	for _, week := range MonthGrid(d.cursor.Year(), d.cursor.Month()) {
		cells := make([]string, len(week))
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
				continue
			}
			date := time.Date(d.cursor.Year(), d.cursor.Month(), day, 0, 0, 0, 0, time.UTC)
			cell := fmt.Sprintf("%2d", day)
			switch {
			case date.Equal(d.cursor):
				cell = cursor.Render(cell)
			case date.Equal(sel):
				cell = chosen.Render(cell)
			case date.Equal(d.today):
				cell = today.Render(cell)
			}
			cells[i] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
