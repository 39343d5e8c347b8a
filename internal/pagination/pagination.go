// Package pagination computes the compressed list of page buttons shown by
// a pagination control. Long runs of pages collapse into ellipsis markers so
// the control keeps a fixed width regardless of how many pages exist.
package pagination

import (
	"errors"
	"strconv"

	apperrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// ErrInvalidRequest is wrapped by every error returned from Compress.
var ErrInvalidRequest = errors.New("invalid pagination request")

// fixedSlots is the number of items surrounding the sibling window: the
// first page, the last page, the current page and two ellipsis markers.
const fixedSlots = 5

// Request describes the pagination state to compress.
//
// CurrentPage is not validated: callers must keep it within
// [1, TotalPages].
type Request struct {
	CurrentPage  int `json:"current_page" yaml:"current_page"`
	TotalPages   int `json:"total_pages" yaml:"total_pages"`
	SiblingCount int `json:"sibling_count" yaml:"sibling_count"`
}

// Item is one entry of a Plan: either a page number or an ellipsis marker.
type Item struct {
	Page     int
	Ellipsis bool
}

// PageItem returns an item for the given page number.
func PageItem(page int) Item {
	return Item{Page: page}
}

// EllipsisItem returns a non-interactive ellipsis marker.
func EllipsisItem() Item {
	return Item{Ellipsis: true}
}

// String renders the item as it appears on screen.
func (i Item) String() string {
	if i.Ellipsis {
		return "..."
	}
	return strconv.Itoa(i.Page)
}

// Plan is the ordered sequence of items to render.
type Plan []Item

// Pages returns only the page numbers of the plan, in order.
func (p Plan) Pages() []int {
	pages := make([]int, 0, len(p))
	for _, item := range p {
		if !item.Ellipsis {
			pages = append(pages, item.Page)
		}
	}
	return pages
}

// Strings renders every item of the plan.
func (p Plan) Strings() []string {
	out := make([]string, len(p))
	for i, item := range p {
		out[i] = item.String()
	}
	return out
}

// Compress returns the plan for req.
func Compress(req Request) (Plan, error) {
	if req.TotalPages < 1 {
		return nil, apperrors.NewInputError("pagination.Compress", "total pages", req.TotalPages, ErrInvalidRequest)
	}
	if req.SiblingCount < 0 {
		return nil, apperrors.NewInputError("pagination.Compress", "sibling count", req.SiblingCount, ErrInvalidRequest)
	}

	total := req.TotalPages
	siblings := req.SiblingCount

	if total <= siblings+fixedSlots {
		return pageRun(1, total), nil
	}

	leftSibling := max(req.CurrentPage-siblings, 1)
	rightSibling := min(req.CurrentPage+siblings, total)

	showLeftEllipsis := leftSibling > 2
	showRightEllipsis := rightSibling < total-2

	edgeRun := 3 + 2*siblings

	switch {
	case !showLeftEllipsis && showRightEllipsis:
		// With three or more siblings the edge run can reach the far
		// edge; an ellipsis there would hide nothing.
		end := edgeRun
		if end >= total-1 {
			return pageRun(1, total), nil
		}
		return append(pageRun(1, end), EllipsisItem(), PageItem(total)), nil

	case showLeftEllipsis && !showRightEllipsis:
		start := total - edgeRun + 1
		if start <= 2 {
			return pageRun(1, total), nil
		}
		plan := Plan{PageItem(1), EllipsisItem()}
		return append(plan, pageRun(start, total)...), nil

	case showLeftEllipsis && showRightEllipsis:
		plan := Plan{PageItem(1), EllipsisItem()}
		plan = append(plan, pageRun(leftSibling, rightSibling)...)
		return append(plan, EllipsisItem(), PageItem(total)), nil

	default:
		// The sibling window touches both edges. This happens when
		// SiblingCount >= 2 (e.g. total 8, siblings 2, current 4): every
		// page fits, so nothing is elided.
		return pageRun(1, total), nil
	}
}

func pageRun(from, to int) Plan {
	if to < from {
		return Plan{}
	}
	plan := make(Plan, 0, to-from+1)
	for page := from; page <= to; page++ {
		plan = append(plan, PageItem(page))
	}
	return plan
}

// HasPrevious reports whether a previous page exists.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a next page exists.
func HasNext(current, total int) bool {
	return current < total
}
