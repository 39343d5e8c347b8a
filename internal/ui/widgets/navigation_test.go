package widgets

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabItems() []TabItem {
	return []TabItem{
		{Value: "one", Content: components.NewText("first pane")},
		{Value: "two", Disabled: true},
		{Value: "three", Content: components.NewText("third pane")},
	}
}

func TestTabsDefaultsToFirstEnabled(t *testing.T) {
	t.Parallel()

	items := tabItems()
	items[0].Disabled = true
	tabs := NewTabs(TabsOptions{Items: items})
	assert.Equal(t, "three", tabs.Value())
}

func TestTabsKeysSkipDisabled(t *testing.T) {
	t.Parallel()

	var changes []string
	tabs := NewTabs(TabsOptions{
		Items:    tabItems(),
		OnChange: func(v string) { changes = append(changes, v) },
	})
	require.Equal(t, "one", tabs.Value())

	tabs.Focus()
	tabs.Update(keyType(tea.KeyRight))
	assert.Equal(t, "three", tabs.Value())
	tabs.Update(keyType(tea.KeyRight))
	assert.Equal(t, "one", tabs.Value(), "movement wraps")

	assert.False(t, tabs.Select("two"))
	assert.False(t, tabs.Select("missing"))
	assert.Equal(t, []string{"three", "one"}, changes)
}

func TestTabsViewAndMouse(t *testing.T) {
	t.Parallel()

	tabs := NewTabs(TabsOptions{Items: tabItems()})
	tabs.SetOrigin(0, 0)
	lines := strings.Split(tabs.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " one │ two │ three ", lines[0])
	assert.Equal(t, "first pane", lines[2])

	tabs.Update(click(8, 0))
	assert.Equal(t, "one", tabs.Value(), "disabled tabs ignore clicks")
	tabs.Update(click(5, 0))
	assert.Equal(t, "one", tabs.Value())
	tabs.Update(click(14, 0))
	assert.Equal(t, "three", tabs.Value())
	assert.Contains(t, tabs.View(), "third pane")

	tabs.Focus()
	lines = strings.Split(tabs.View(), "\n")
	assert.Equal(t, "› one │ two │ three ", lines[0])
	tabs.Update(click(1, 0))
	assert.Equal(t, "one", tabs.Value(), "the focus marker shifts the tabs")
}

func TestTabsTruncatesLabels(t *testing.T) {
	t.Parallel()

	tabs := NewTabs(TabsOptions{
		Items:         []TabItem{{Value: "a", Label: "A very long label indeed"}},
		MaxLabelWidth: 8,
	})
	first := strings.Split(tabs.View(), "\n")[0]
	assert.LessOrEqual(t, len([]rune(first)), 10)
}

func TestTabsDelegated(t *testing.T) {
	t.Parallel()

	active := "one"
	var requested []string
	tabs := NewTabs(TabsOptions{
		Items:    tabItems(),
		Value:    &active,
		OnChange: func(v string) { requested = append(requested, v) },
	})
	assert.True(t, tabs.Select("three"))
	assert.Equal(t, "one", tabs.Value())
	assert.Equal(t, []string{"three"}, requested)
	tabs.Sync("three")
	assert.Equal(t, "three", tabs.Value())
}

func listItems() []ListItem {
	return []ListItem{
		{Title: "Alpha", Description: "first"},
		{Title: "Beta"},
		{Title: "Gamma", Disabled: true},
	}
}

func TestListKeyboard(t *testing.T) {
	t.Parallel()

	var selected []int
	l := NewList(ListOptions{
		Items:           listItems(),
		DefaultSelected: -1,
		OnSelect:        func(i int) { selected = append(selected, i) },
	})
	assert.Equal(t, -1, l.Selected())

	l.Focus()
	l.Update(keyType(tea.KeyDown))
	l.Update(keyType(tea.KeyEnter))
	assert.Equal(t, 1, l.Selected())

	l.Update(keyType(tea.KeyEnd))
	assert.Equal(t, 2, l.Cursor())
	l.Update(keyType(tea.KeyEnter))
	assert.Equal(t, 1, l.Selected(), "disabled items cannot be selected")

	l.Update(keyType(tea.KeyHome))
	l.Update(keyRunes(" "))
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, []int{1, 0}, selected)
}

func TestListDividedMouse(t *testing.T) {
	t.Parallel()

	l := NewList(ListOptions{Items: listItems(), DefaultSelected: -1, Divided: true})
	l.SetOrigin(0, 0)
	view := l.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "  first", lines[1])
	assert.Contains(t, lines[2], "─")

	l.Update(click(0, 2))
	assert.Equal(t, -1, l.Selected(), "dividers are not items")
	l.Update(click(0, 1))
	assert.Equal(t, 0, l.Selected(), "descriptions belong to their item")
	l.Update(click(0, 3))
	assert.Equal(t, 1, l.Selected())
	l.Update(click(0, 5))
	assert.Equal(t, 1, l.Selected())
}

func TestListSetItemsClampsCursor(t *testing.T) {
	t.Parallel()

	l := NewList(ListOptions{Items: listItems(), DefaultSelected: 2})
	assert.Equal(t, 2, l.Cursor())
	l.SetItems(listItems()[:1])
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, -1, l.Selected(), "a stale selection reads as none")
}

func accordionItems() []AccordionItem {
	return []AccordionItem{
		{ID: "a", Title: "Shipping", Content: "Ships in two days."},
		{ID: "b", Title: "Returns", Content: "Thirty day returns."},
		{ID: "c", Title: "Warranty", Content: "None.", Disabled: true},
	}
}

func TestAccordionSingle(t *testing.T) {
	t.Parallel()

	var changes [][]string
	a := NewAccordion(AccordionOptions{
		Items:       accordionItems(),
		DefaultOpen: []string{"a", "b"},
		OnChange:    func(ids []string) { changes = append(changes, ids) },
	})
	assert.Equal(t, []string{"a"}, a.OpenIDs(), "single mode keeps one default")

	assert.True(t, a.Toggle("b"))
	assert.Equal(t, []string{"b"}, a.OpenIDs())
	assert.True(t, a.Toggle("b"))
	assert.Empty(t, a.OpenIDs())
	assert.False(t, a.Toggle("c"))
	assert.False(t, a.Toggle("zzz"))
	assert.Len(t, changes, 2)
}

func TestAccordionMultiple(t *testing.T) {
	t.Parallel()

	a := NewAccordion(AccordionOptions{Items: accordionItems(), Multiple: true})
	a.Toggle("a")
	a.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, a.OpenIDs())
	a.Toggle("a")
	assert.Equal(t, []string{"b"}, a.OpenIDs())
	assert.True(t, a.IsExpanded("b"))
}

func TestAccordionPlainViewAndMouse(t *testing.T) {
	t.Parallel()

	a := NewAccordion(AccordionOptions{
		Items:       accordionItems(),
		DefaultOpen: []string{"a"},
		PlainText:   true,
		Width:       40,
	})
	a.SetOrigin(0, 0)
	lines := strings.Split(a.View(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "▾ Shipping", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "  Ships in two days.", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "▸ Returns", strings.TrimRight(lines[2], " "))

	a.Update(click(0, 1))
	assert.Equal(t, []string{"a"}, a.OpenIDs(), "clicking the body does nothing")
	a.Update(click(0, 2))
	assert.Equal(t, []string{"b"}, a.OpenIDs())
}

func TestAccordionKeyboard(t *testing.T) {
	t.Parallel()

	a := NewAccordion(AccordionOptions{Items: accordionItems()})
	a.Focus()
	a.Update(keyType(tea.KeyDown))
	a.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []string{"b"}, a.OpenIDs())
}

func TestAccordionMarkdownIsCached(t *testing.T) {
	t.Parallel()

	a := NewAccordion(AccordionOptions{
		Items:       []AccordionItem{{ID: "md", Title: "Notes", Content: "Some **bold** words"}},
		DefaultOpen: []string{"md"},
		Width:       40,
	})
	first := a.View()
	assert.Contains(t, first, "bold")
	assert.Equal(t, first, a.View())
	assert.Len(t, a.rendered, 1)
}

func TestAccordionDelegated(t *testing.T) {
	t.Parallel()

	open := []string{}
	var requested [][]string
	a := NewAccordion(AccordionOptions{
		Items:    accordionItems(),
		Open:     &open,
		OnChange: func(ids []string) { requested = append(requested, ids) },
	})
	a.Toggle("a")
	assert.Empty(t, a.OpenIDs())
	require.Len(t, requested, 1)
	a.Sync(requested[0])
	assert.True(t, a.IsExpanded("a"))
}

func stepperSteps() []Step {
	return []Step{
		{Label: "Cart"},
		{Label: "Address"},
		{Label: "Payment", Status: StepDisabled},
		{Label: "Review"},
	}
}

func TestDeriveStatus(t *testing.T) {
	t.Parallel()

	s := NewStepper(StepperOptions{Steps: stepperSteps(), DefaultActive: 1})
	assert.Equal(t, []StepStatus{StepCompleted, StepCurrent, StepDisabled, StepUpcoming}, s.Statuses())
	assert.Equal(t, StepError, DeriveStatus(Step{Status: StepError}, 0, 3))
	assert.Equal(t, "upcoming", StepUpcoming.String())
}

func TestStepperNavigation(t *testing.T) {
	t.Parallel()

	var changes []int
	s := NewStepper(StepperOptions{
		Steps:         stepperSteps(),
		DefaultActive: 1,
		Clickable:     true,
		OnStepChange:  func(i int) { changes = append(changes, i) },
	})
	assert.False(t, s.GoTo(2))
	s.Focus()
	s.Update(keyType(tea.KeyRight))
	assert.Equal(t, 3, s.Active(), "disabled steps are skipped")
	s.Update(keyType(tea.KeyRight))
	assert.Equal(t, 3, s.Active(), "movement stops at the last step")
	s.Update(keyType(tea.KeyLeft))
	assert.Equal(t, 1, s.Active())
	assert.Equal(t, []int{3, 1}, changes)
}

func TestStepperNotClickable(t *testing.T) {
	t.Parallel()

	s := NewStepper(StepperOptions{Steps: stepperSteps()})
	assert.False(t, s.GoTo(1))
	s.Focus()
	s.Update(keyType(tea.KeyRight))
	assert.Equal(t, 0, s.Active())
}

func TestStepperVerticalMouse(t *testing.T) {
	t.Parallel()

	s := NewStepper(StepperOptions{Steps: stepperSteps(), Clickable: true, Direction: components.DirectionVertical})
	s.SetOrigin(0, 0)
	lines := strings.Split(s.View(), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "● Cart", lines[0])
	assert.Equal(t, "│", lines[1])

	s.Update(click(0, 4))
	assert.Equal(t, 0, s.Active())
	s.Update(click(0, 6))
	assert.Equal(t, 3, s.Active())
	s.Update(click(0, 3))
	assert.Equal(t, 1, s.Active(), "rails belong to the step above")
}

func TestStepperHorizontalMouse(t *testing.T) {
	t.Parallel()

	s := NewStepper(StepperOptions{
		Steps:     stepperSteps(),
		Clickable: true,
		Direction: components.DirectionHorizontal,
	})
	s.SetOrigin(0, 0)
	assert.Equal(t, "● Cart ── ○ Address ── ○ Payment ── ○ Review", s.View())

	s.Update(click(12, 0))
	assert.Equal(t, 1, s.Active())
	s.Update(click(7, 0))
	assert.Equal(t, 1, s.Active(), "separators are not steps")
}

func TestSimpleStepper(t *testing.T) {
	t.Parallel()

	s := NewSimpleStepper(stepperSteps(), 9, 20)
	assert.Equal(t, 3, s.Active())
	view := s.View()
	assert.Contains(t, view, "Review")
	assert.Contains(t, view, "4/4")

	assert.Empty(t, NewSimpleStepper(nil, 0, 20).View())
}

func slides(names ...string) []ui.Renderable {
	out := make([]ui.Renderable, len(names))
	for i, n := range names {
		out[i] = components.NewText(n)
	}
	return out
}

func TestCarouselWraps(t *testing.T) {
	t.Parallel()

	var changes []int
	c := NewCarousel(CarouselOptions{
		Slides:   slides("one", "two", "three"),
		OnChange: func(i int) { changes = append(changes, i) },
	})
	c.Prev()
	assert.Equal(t, 2, c.Current())
	c.Next()
	assert.Equal(t, 0, c.Current())

	c.Focus()
	c.Update(keyType(tea.KeyRight))
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, []int{2, 0, 1}, changes)
}

func TestCarouselMouse(t *testing.T) {
	t.Parallel()

	var dots []int
	c := NewCarousel(CarouselOptions{
		Slides:     slides("one", "two", "three"),
		OnDotClick: func(i int) { dots = append(dots, i) },
	})
	c.SetOrigin(0, 0)
	assert.Equal(t, "one\n‹ ● ○ ○ ›", c.View())

	c.Update(click(8, 1))
	assert.Equal(t, 1, c.Current())
	c.View()
	c.Update(click(0, 1))
	assert.Equal(t, 0, c.Current())
	c.View()
	c.Update(click(6, 1))
	assert.Equal(t, 2, c.Current())
	assert.Equal(t, []int{2}, dots)
	c.Update(click(0, 0))
	assert.Equal(t, 2, c.Current(), "the slide itself is not a control")
}

func TestCarouselAutoPlay(t *testing.T) {
	t.Parallel()

	c := NewCarousel(CarouselOptions{
		Slides:   slides("one", "two"),
		AutoPlay: true,
		Tick:     instantTick,
	})
	cmd := c.Init()
	require.NotNil(t, cmd)
	next := c.Update(cmd())
	assert.Equal(t, 1, c.Current())
	require.NotNil(t, next, "autoplay reschedules")

	assert.Nil(t, c.SetAutoPlay(false))
	c.Update(next())
	assert.Equal(t, 1, c.Current(), "stopped autoplay ignores the pending tick")
}

func TestCarouselSingleSlideDoesNotAutoPlay(t *testing.T) {
	t.Parallel()

	c := NewCarousel(CarouselOptions{Slides: slides("only"), AutoPlay: true, Tick: instantTick})
	assert.Nil(t, c.Init())
	assert.Empty(t, NewCarousel(CarouselOptions{}).View())
}

func navItems() []NavItem {
	return []NavItem{
		{Label: "Home", Href: "/"},
		{Label: "Docs", Href: "/docs"},
		{Label: "Blog", Href: "/blog", Disabled: true},
	}
}

func TestNavigationKeyboard(t *testing.T) {
	t.Parallel()

	var visited []string
	contacted := 0
	n := NewNavigation(NavigationOptions{
		Items:         navItems(),
		DefaultActive: "/",
		OnNavigate:    func(href string) { visited = append(visited, href) },
		OnContact:     func() { contacted++ },
	})
	view := n.View()
	assert.False(t, n.Collapsed())
	for _, want := range []string{"loom", "Home", "Docs", "Blog", "Contact"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 0, n.Cursor(), "the cursor starts on the active item")

	n.Update(keyType(tea.KeyRight))
	assert.Equal(t, 0, n.Cursor(), "keys need focus")

	n.Focus()
	n.Update(keyType(tea.KeyRight))
	assert.Equal(t, 1, n.Cursor())
	n.Update(keyType(tea.KeyRight))
	assert.Equal(t, 3, n.Cursor(), "disabled items are skipped")
	n.Update(keyType(tea.KeyEnter))
	assert.Equal(t, 1, contacted)
	assert.Empty(t, visited)

	n.Update(keyType(tea.KeyLeft))
	n.Update(keyType(tea.KeyEnter))
	assert.Equal(t, "/docs", n.Active())
	assert.Equal(t, []string{"/docs"}, visited)

	n.Activate(2)
	assert.Equal(t, "/docs", n.Active(), "disabled items never navigate")
}

func TestNavigationMouse(t *testing.T) {
	t.Parallel()

	var visited []string
	n := NewNavigation(NavigationOptions{
		Items:       navItems(),
		HideContact: true,
		Variant:     NavFlat,
		OnNavigate:  func(href string) { visited = append(visited, href) },
	})
	n.SetOrigin(0, 0)
	assert.NotContains(t, n.View(), "Contact")
	require.Len(t, n.spans, 3)

	n.Update(click(n.spans[1].from, 1))
	assert.True(t, n.Focused())
	assert.Equal(t, "/docs", n.Active())

	n.Update(click(n.spans[2].from, 1))
	assert.Equal(t, []string{"/docs"}, visited)
}

func TestNavigationCollapsesToMenu(t *testing.T) {
	t.Parallel()

	var changes []bool
	var visited []string
	n := NewNavigation(NavigationOptions{
		Items:        navItems(),
		OnNavigate:   func(href string) { visited = append(visited, href) },
		OnMenuChange: func(open bool) { changes = append(changes, open) },
	})
	ctx := components.DefaultContext().WithWidth(20)
	n.SetOrigin(0, 0)
	bar := n.ViewWithContext(ctx)
	require.True(t, n.Collapsed())
	assert.Contains(t, bar, navMenuGlyph)
	assert.NotContains(t, bar, "Docs")

	n.Focus()
	n.Update(keyType(tea.KeyEnter))
	require.True(t, n.MenuOpen())
	drawer := n.ViewWithContext(ctx)
	assert.Contains(t, drawer, navCloseGlyph)
	assert.Contains(t, drawer, "Docs")
	assert.Contains(t, drawer, "Contact")

	n.Update(keyType(tea.KeyDown))
	n.Update(keyType(tea.KeyEnter))
	assert.False(t, n.MenuOpen(), "choosing closes the drawer")
	assert.Equal(t, []string{"/docs"}, visited)

	n.ViewWithContext(ctx)
	n.Update(click(17, 1))
	require.True(t, n.MenuOpen())
	n.ViewWithContext(ctx)
	n.Update(click(1, 3))
	assert.Equal(t, []string{"/docs", "/"}, visited)

	n.Update(keyType(tea.KeyEnter))
	n.Update(keyType(tea.KeyEsc))
	assert.False(t, n.MenuOpen())
	assert.Equal(t, []bool{true, false, true, false, true, false}, changes)
}

func TestNavigationDelegated(t *testing.T) {
	t.Parallel()

	active := "/"
	var visited []string
	n := NewNavigation(NavigationOptions{
		Items:      navItems(),
		Active:     &active,
		OnNavigate: func(href string) { visited = append(visited, href) },
	})
	n.Activate(1)
	assert.Equal(t, "/", n.Active())
	assert.Equal(t, []string{"/docs"}, visited)

	n.Sync("/docs")
	assert.Equal(t, "/docs", n.Active())
}
