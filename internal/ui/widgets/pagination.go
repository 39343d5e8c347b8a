package widgets

import (
	"strconv"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/value"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaginationOptions configures a Pagination.
type PaginationOptions struct {
	// Page delegates the current page to the host when non-nil.
	Page         *int
	DefaultPage  int
	TotalPages   int
	SiblingCount int
	Size         components.Size
	OnChange     func(page int)
}

// Pagination renders a compressed row of page buttons between previous and
// next arrows.
type Pagination struct {
	focusState
	hitbox
	keys     KeyMap
	page     *value.Value[int]
	total    int
	siblings int
	size     components.Size
	spans    []span
	targets  []int
}

// NewPagination creates a pagination control. Totals below one are raised
// to one and negative sibling counts to zero.
func NewPagination(opts PaginationOptions) *Pagination {
	total := max(opts.TotalPages, 1)
	fallback := clampInt(opts.DefaultPage, 1, total)
	return &Pagination{
		keys:     DefaultKeyMap(),
		page:     value.New(opts.Page, fallback, opts.OnChange),
		total:    total,
		siblings: max(opts.SiblingCount, 0),
		size:     opts.Size,
	}
}

// Page is the current page.
func (p *Pagination) Page() int {
	return p.page.Get()
}

// TotalPages is the page count.
func (p *Pagination) TotalPages() int {
	return p.total
}

// Plan is the compressed sequence for the current page.
func (p *Pagination) Plan() pagination.Plan {
	plan, err := pagination.Compress(pagination.Request{
		CurrentPage:  p.Page(),
		TotalPages:   p.total,
		SiblingCount: p.siblings,
	})
	if err != nil {
		return pagination.Plan{pagination.PageItem(1)}
	}
	return plan
}

// SetPage requests page. Out-of-range pages and the current page are
// ignored.
func (p *Pagination) SetPage(page int) bool {
	if page < 1 || page > p.total || page == p.Page() {
		return false
	}
	p.page.Request(page)
	return true
}

// SetTotalPages changes the page count, pulling an owned page back into
// range.
func (p *Pagination) SetTotalPages(total int) {
	p.total = max(total, 1)
	if p.Page() > p.total {
		p.page.Reset(p.total)
	}
}

// Sync applies the host's page.
func (p *Pagination) Sync(page int) {
	p.page.Sync(page)
}

func (p *Pagination) Prev() bool {
	if !pagination.HasPrevious(p.Page()) {
		return false
	}
	return p.SetPage(p.Page() - 1)
}

func (p *Pagination) Next() bool {
	if !pagination.HasNext(p.Page(), p.total) {
		return false
	}
	return p.SetPage(p.Page() + 1)
}

func (p *Pagination) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return nil
		}
		switch {
		case key.Matches(msg, p.keys.Prev):
			p.Prev()
		case key.Matches(msg, p.keys.Next):
			p.Next()
		case key.Matches(msg, p.keys.First):
			p.SetPage(1)
		case key.Matches(msg, p.keys.Last):
			p.SetPage(p.total)
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if n, err := strconv.Atoi(string(msg.Runes)); err == nil {
				p.SetPage(n)
			}
		}
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		x, _, inside := p.locate(msg)
		if !inside {
			return nil
		}
		if i := spanAt(p.spans, x); i >= 0 {
			p.activate(p.targets[i])
		}
	}
	return nil
}

const (
	targetPrev     = -1
	targetNext     = -2
	targetEllipsis = 0
)

func (p *Pagination) activate(target int) {
	switch target {
	case targetPrev:
		p.Prev()
	case targetNext:
		p.Next()
	case targetEllipsis:
	default:
		p.SetPage(target)
	}
}

func (p *Pagination) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

func (p *Pagination) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	cell := components.SizePadding(p.size)(lipgloss.NewStyle(), theme)
	current := components.Background(components.PalettePrimary)(cell, theme).Bold(true)
	muted := cell.Faint(true)
	if p.focused {
		current = current.Underline(true)
	}

	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return cell.Render(glyph)
		}
		return muted.Render(glyph)
	}

	plan := p.Plan()
	tokens := make([]string, 0, len(plan)+2)
	targets := make([]int, 0, len(plan)+2)

	tokens = append(tokens, arrow("‹", pagination.HasPrevious(p.Page())))
	targets = append(targets, targetPrev)
	for _, item := range plan {
		switch {
		case item.Ellipsis:
			tokens = append(tokens, muted.Render(item.String()))
			targets = append(targets, targetEllipsis)
		case item.Page == p.Page():
			tokens = append(tokens, current.Render(item.String()))
			targets = append(targets, item.Page)
		default:
			tokens = append(tokens, cell.Render(item.String()))
			targets = append(targets, item.Page)
		}
	}
	tokens = append(tokens, arrow("›", pagination.HasNext(p.Page(), p.total)))
	targets = append(targets, targetNext)

	out, spans := layoutSpans(tokens, "")
	p.spans, p.targets = spans, targets
	return p.measure(out)
}
