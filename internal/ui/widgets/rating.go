package widgets

import (
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRatingMax is the star count of a rating without an explicit max.
const DefaultRatingMax = 5

// RatingOptions configures a Rating.
type RatingOptions struct {
	// Value delegates the rating to the host when non-nil.
	Value        *int
	DefaultValue int
	Max          int
	// Interactive enables hover preview and selection. A rating is read
	// only by default.
	Interactive   bool
	OnValueChange func(v int)
}

// Rating shows a score as a row of stars. Hovering an interactive rating
// previews the score under the pointer.
type Rating struct {
	focusState
	hitbox
	keys        KeyMap
	score       *value.Value[int]
	max         int
	interactive bool
	hover       int
}

func NewRating(opts RatingOptions) *Rating {
	r := &Rating{
		keys:        DefaultKeyMap(),
		score:       value.New(opts.Value, opts.DefaultValue, opts.OnValueChange),
		max:         opts.Max,
		interactive: opts.Interactive,
	}
	if r.max <= 0 {
		r.max = DefaultRatingMax
	}
	return r
}

// Value is the rating clamped to [0, max].
func (r *Rating) Value() int {
	return clampInt(r.score.Get(), 0, r.max)
}

func (r *Rating) Max() int {
	return r.max
}

// Hover is the previewed score, or 0 when nothing is hovered.
func (r *Rating) Hover() int {
	return r.hover
}

// Display is the score currently drawn: the preview when hovering.
func (r *Rating) Display() int {
	if r.hover > 0 {
		return r.hover
	}
	return r.Value()
}

// Sync applies the host's rating.
func (r *Rating) Sync(v int) {
	r.score.Sync(v)
}

// Rate requests score v. Read-only ratings ignore it.
func (r *Rating) Rate(v int) {
	if !r.interactive || v < 1 || v > r.max || v == r.Value() {
		return
	}
	r.score.Request(v)
}

func (r *Rating) Update(msg tea.Msg) tea.Cmd {
	if !r.interactive {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !r.focused {
			return nil
		}
		switch {
		case key.Matches(msg, r.keys.Prev):
			r.Rate(max(r.Value()-1, 1))
		case key.Matches(msg, r.keys.Next):
			r.Rate(min(r.Value()+1, r.max))
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
			r.Rate(int(msg.Runes[0] - '0'))
		}
	case tea.MouseMsg:
		x, y, inside := r.locate(msg)
		star := 0
		if inside && y == 0 && x%2 == 0 {
			star = x/2 + 1
		}
		switch {
		case isMotion(msg):
			r.hover = star
		case isPress(msg) && star > 0:
			r.Rate(star)
		}
	}
	return nil
}

func (r *Rating) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r *Rating) ViewWithContext(ctx components.RenderContext) string {
	on := components.Foreground(components.PaletteWarning)(lipgloss.NewStyle(), ctx.Theme)
	off := lipgloss.NewStyle().Faint(true)
	shown := r.Display()
	stars := make([]string, r.max)
	for i := range stars {
		if i < shown {
			stars[i] = on.Render("★")
		} else {
			stars[i] = off.Render("☆")
		}
	}
	return r.measure(strings.Join(stars, " "))
}
