package widgets

import (
	"time"

	"github.com/alexisbeaulieu97/loom/internal/frame"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultCarouselInterval is the autoplay period.
const DefaultCarouselInterval = 5 * time.Second

// CarouselOptions configures a Carousel.
type CarouselOptions struct {
	Slides   []ui.Renderable
	AutoPlay bool
	Interval time.Duration
	// Tick replaces the autoplay timer, mostly for tests.
	Tick       frame.TickFunc
	OnChange   func(index int)
	OnDotClick func(index int)
}

// Carousel cycles through slides. Previous and next wrap around; autoplay
// advances on a timer while the carousel has more than one slide.
type Carousel struct {
	focusState
	hitbox
	keys       KeyMap
	slides     []ui.Renderable
	current    int
	autoplay   bool
	timer      *frame.Throttle
	onChange   func(index int)
	onDotClick func(index int)

	indicator *components.CarouselIndicator
	navRow    int
	dotsFrom  int
	prevCol   int
	nextCol   int
}

func NewCarousel(opts CarouselOptions) *Carousel {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	frameOpts := []frame.Option{frame.WithInterval(interval)}
	if opts.Tick != nil {
		frameOpts = append(frameOpts, frame.WithTick(opts.Tick))
	}
	return &Carousel{
		keys:       DefaultKeyMap(),
		slides:     opts.Slides,
		autoplay:   opts.AutoPlay,
		timer:      frame.New(frameOpts...),
		onChange:   opts.OnChange,
		onDotClick: opts.OnDotClick,
	}
}

// Init starts autoplay.
func (c *Carousel) Init() tea.Cmd {
	return c.schedule()
}

func (c *Carousel) schedule() tea.Cmd {
	if !c.autoplay || len(c.slides) <= 1 {
		return nil
	}
	return c.timer.Schedule()
}

// Current is the visible slide.
func (c *Carousel) Current() int {
	return c.current
}

func (c *Carousel) Len() int {
	return len(c.slides)
}

// SetAutoPlay starts or stops the timer.
func (c *Carousel) SetAutoPlay(on bool) tea.Cmd {
	c.autoplay = on
	if !on {
		c.timer.Cancel()
		return nil
	}
	return c.schedule()
}

// GoTo shows slide i, which must be in range.
func (c *Carousel) GoTo(i int) {
	if i < 0 || i >= len(c.slides) || i == c.current {
		return
	}
	c.current = i
	if c.onChange != nil {
		c.onChange(i)
	}
}

// Next shows the following slide, wrapping to the first.
func (c *Carousel) Next() {
	if n := len(c.slides); n > 0 {
		c.GoTo((c.current + 1) % n)
	}
}

// Prev shows the preceding slide, wrapping to the last.
func (c *Carousel) Prev() {
	if n := len(c.slides); n > 0 {
		c.GoTo((c.current - 1 + n) % n)
	}
}

func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frame.Msg:
		if c.timer.Due(msg) {
			c.Next()
			return c.schedule()
		}
	case tea.KeyMsg:
		if !c.focused {
			return nil
		}
		switch {
		case key.Matches(msg, c.keys.Prev):
			c.Prev()
		case key.Matches(msg, c.keys.Next):
			c.Next()
		}
	case tea.MouseMsg:
		x, y, inside := c.locate(msg)
		if !isPress(msg) || !inside || y != c.navRow {
			return nil
		}
		switch {
		case x == c.prevCol:
			c.Prev()
		case x == c.nextCol:
			c.Next()
		case c.indicator != nil:
			if i := c.indicator.DotAt(x - c.dotsFrom); i >= 0 {
				if c.onDotClick != nil {
					c.onDotClick(i)
				}
				c.GoTo(i)
			}
		}
	}
	return nil
}

func (c *Carousel) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

func (c *Carousel) ViewWithContext(ctx components.RenderContext) string {
	if len(c.slides) == 0 {
		return c.measure("")
	}
	slide := components.Render(c.slides[c.current], ctx)
	c.indicator = components.NewCarouselIndicator(len(c.slides), c.current)
	dots := c.indicator.ViewWithContext(ctx)

	c.navRow = lipgloss.Height(slide)
	c.prevCol = 0
	c.dotsFrom = 2
	c.nextCol = c.dotsFrom + lipgloss.Width(dots) + 1
	nav := "‹ " + dots + " ›"
	return c.measure(slide + "\n" + nav)
}
