package gallery

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/logger"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/alexisbeaulieu97/loom/internal/ui/widgets"
)

// control is a widget the gallery can focus and place.
type control interface {
	widgets.Widget
	SetOrigin(x, y int)
}

// entry is one labelled showcase on a page.
type entry struct {
	title   string
	control control
	static  ui.Renderable
	// fill renders the entry at the terminal width.
	fill bool

	top, rows int
}

func (e *entry) body() ui.Renderable {
	if e.control != nil {
		return e.control
	}
	return e.static
}

type page struct {
	id      string
	title   string
	entries []*entry
}

func (p *page) controls() []*entry {
	var out []*entry
	for _, e := range p.entries {
		if e.control != nil {
			out = append(out, e)
		}
	}
	return out
}

// activity records the last widget callback for the status line and logs
// every callback.
type activity struct {
	log  *logger.Logger
	last string
}

func (a *activity) record(component, event string, value any) {
	a.last = fmt.Sprintf("%s %s: %v", component, event, value)
	a.log.Event(event, map[string]any{"widget": component, "value": value})
}

// catalog is every page plus the pieces the model drives directly.
type catalog struct {
	pages    []*page
	modal    *widgets.Modal
	carousel *widgets.Carousel
	loader   *components.Loader
}

// init starts the animations.
func (c *catalog) init() tea.Cmd {
	return tea.Batch(c.carousel.Init(), c.loader.Tick())
}

func interactive(title string, c control) *entry {
	return &entry{title: title, control: c}
}

// spanning marks e to render across the terminal width.
func spanning(e *entry) *entry {
	e.fill = true
	return e
}

func showcase(title string, r ui.Renderable) *entry {
	return &entry{title: title, static: r}
}

func buildCatalog(cfg config.Config, act *activity, today func() time.Time) *catalog {
	c := &catalog{
		loader: components.NewLoader("Loading components"),
	}
	c.modal = widgets.NewModal(widgets.ModalOptions{
		Title:           "Discard changes?",
		Body:            components.NewText("Your edits to this draft will be lost."),
		CloseOnBackdrop: true,
		CheckboxLabel:   "Don't ask again",
		ConfirmLabel:    "Discard",
		OnOpenChange:    func(open bool) { act.record("modal", "open", open) },
		OnConfirm:       func(checked bool) { act.record("modal", "confirm", checked) },
		OnCancel:        func() { act.record("modal", "cancel", true) },
	})
	c.carousel = widgets.NewCarousel(widgets.CarouselOptions{
		Slides: []ui.Renderable{
			components.NewBanner("Welcome").WithDescription("Components for terminal apps."),
			components.NewBanner("Themes").WithDescription("Press ctrl+t to switch.").WithVariant(components.VariantInfo),
			components.NewBanner("Mouse").WithDescription("Click anything.").WithVariant(components.VariantSuccess),
		},
		AutoPlay: cfg.Carousel.AutoPlay,
		Interval: cfg.CarouselTick(),
		OnChange: func(i int) { act.record("carousel", "slide", i) },
	})

	c.pages = []*page{
		displayPage(c.loader),
		navigationPage(cfg, act, c.carousel),
		formsPage(cfg, act),
		pickersPage(cfg, act, today),
		overlaysPage(cfg, act, c.modal),
	}
	return c
}

func displayPage(loader *components.Loader) *page {
	row := func(items ...ui.Renderable) ui.Renderable {
		return components.NewStack(items...).WithDirection(components.DirectionHorizontal).WithGap(1)
	}
	return &page{
		id:    "display",
		title: "Display",
		entries: []*entry{
			showcase("Header", components.NewHeader("Loom").WithSubtitle("terminal design system")),
			showcase("Buttons", row(
				components.PrimaryButton("Save"),
				components.SecondaryButton("Preview"),
				components.DangerButton("Delete").WithSize(components.SizeSmall),
				components.NeutralButton("Busy").WithLoading(true),
				components.NeutralButton("Off").WithDisabled(true),
			)),
			showcase("Badges", row(
				components.NewBadge("new"),
				components.NewBadge("beta").WithVariant(components.VariantWarning),
				components.NewBadge("stable").WithVariant(components.VariantSuccess),
			)),
			showcase("Chips", row(
				components.NewChip("golang").WithSelected(true),
				components.NewChip("terminal").WithRemovable(true),
				components.NewChip("a very long chip label").WithMaxWidth(12),
			)),
			showcase("Alert", components.NewAlert("Settings saved.").WithVariant(components.VariantSuccess)),
			showcase("Toast", components.NewToast("Upload finished").WithTitle("Files").WithDismissible(true)),
			showcase("Loader", loader),
			showcase("Skeleton", components.NewSkeleton(24, 2)),
			showcase("Card", components.NewCard("Usage", components.NewText("3 of 5 seats used")).WithDescription("Team plan")),
			showcase("Empty state", components.NewEmptyState("No results").WithDescription("Try another search.")),
			showcase("Link", components.NewLink("Documentation", "https://example.com/docs").WithHref(true)),
			showcase("Floating action", ui.RenderableFunc(func() string {
				return components.NewFloatingActionButton().WithSize(components.SizeMedium).
					Float(components.NewSkeleton(24, 3).View(), 28, 4, 0, components.DefaultContext())
			})),
			showcase("Sticky button", ui.RenderableFunc(func() string {
				return components.NewStickyButton("Checkout").
					Pin("2 items\nSubtotal $48.00\nShipping calculated next", 4, components.DefaultContext())
			})),
		},
	}
}

var checkoutSteps = []widgets.Step{
	{Label: "Cart"},
	{Label: "Address"},
	{Label: "Payment"},
	{Label: "Review"},
}

func navigationPage(cfg config.Config, act *activity, carousel *widgets.Carousel) *page {
	stepper := widgets.NewStepper(widgets.StepperOptions{
		Steps:        checkoutSteps,
		Direction:    components.DirectionHorizontal,
		Clickable:    true,
		OnStepChange: func(i int) { act.record("stepper", "step", i) },
	})
	progress := ui.RenderableFunc(func() string {
		return widgets.NewSimpleStepper(checkoutSteps, stepper.Active(), 24).View()
	})

	return &page{
		id:    "navigation",
		title: "Navigation",
		entries: []*entry{
			interactive("Pagination", widgets.NewPagination(widgets.PaginationOptions{
				TotalPages:   cfg.Pagination.TotalPages,
				SiblingCount: cfg.Pagination.SiblingCount,
				DefaultPage:  1,
				OnChange:     func(p int) { act.record("pagination", "page", p) },
			})),
			interactive("Stepper", stepper),
			showcase("Progress", progress),
			interactive("Carousel", carousel),
			interactive("List", widgets.NewList(widgets.ListOptions{
				Items: []widgets.ListItem{
					{Title: "Inbox", Description: "12 unread"},
					{Title: "Drafts"},
					{Title: "Archive", Disabled: true},
				},
				DefaultSelected: -1,
				Divided:         true,
				OnSelect:        func(i int) { act.record("list", "select", i) },
			})),
			interactive("Accordion", widgets.NewAccordion(widgets.AccordionOptions{
				Items: []widgets.AccordionItem{
					{ID: "what", Title: "What is loom?", Content: "A set of **terminal** components."},
					{ID: "how", Title: "How do I theme it?", Content: "Set `theme: dark` in `loom.yaml`."},
				},
				DefaultOpen: []string{"what"},
				Width:       48,
				OnChange:    func(open []string) { act.record("accordion", "open", strings.Join(open, ",")) },
			})),
			spanning(interactive("Site header", widgets.NewNavigation(widgets.NavigationOptions{
				Items: []widgets.NavItem{
					{Label: "Home", Href: "/"},
					{Label: "Docs", Href: "/docs"},
					{Label: "Blog", Href: "/blog"},
					{Label: "Careers", Href: "/careers", Disabled: true},
				},
				DefaultActive: "/",
				OnNavigate:    func(href string) { act.record("navigation", "navigate", href) },
				OnContact:     func() { act.record("navigation", "contact", true) },
				OnMenuChange:  func(open bool) { act.record("navigation", "menu", open) },
			}))),
		},
	}
}

func formsPage(cfg config.Config, act *activity) *page {
	minQty, maxQty := 0.0, 10.0
	return &page{
		id:    "forms",
		title: "Forms",
		entries: []*entry{
			interactive("Input", widgets.NewInputText(widgets.InputTextOptions{
				Label:       "Name",
				Placeholder: "Ada Lovelace",
				Clearable:   true,
				Width:       24,
				OnChange:    func(s string) { act.record("input", "change", s) },
			})),
			interactive("Search", widgets.NewSearchBar(widgets.SearchBarOptions{
				Items:    []string{"Accordion", "Carousel", "DatePicker", "Pagination", "TimePicker", "Tooltip"},
				Width:    24,
				OnSelect: func(s string) { act.record("search", "select", s) },
			})),
			interactive("Quantity", widgets.NewInputNumber(widgets.InputNumberOptions{
				DefaultValue: 1,
				Min:          &minQty,
				Max:          &maxQty,
				OnChange:     func(v float64) { act.record("quantity", "change", v) },
			})),
			interactive("Checkbox", widgets.NewCheckbox(widgets.ToggleOptions{
				Label:    "Subscribe",
				OnChange: func(on bool) { act.record("checkbox", "change", on) },
			})),
			interactive("Switch", widgets.NewSwitch(widgets.ToggleOptions{
				Label:          "Notifications",
				DefaultChecked: true,
				OnChange:       func(on bool) { act.record("switch", "change", on) },
			})),
			interactive("Radio", widgets.NewRadioGroup(widgets.RadioGroupOptions{
				Options: []widgets.RadioOption{
					{Value: "s", Label: "Small"},
					{Value: "m", Label: "Medium"},
					{Value: "l", Label: "Large", Disabled: true},
				},
				DefaultValue: "m",
				Direction:    components.DirectionHorizontal,
				OnChange:     func(v string) { act.record("radio", "change", v) },
			})),
			interactive("Verification", widgets.NewVerificationField(widgets.VerificationFieldOptions{
				Length:     cfg.Verification.Length,
				Label:      "Code",
				HelperText: "Check your inbox",
				OnComplete: func(code string) { act.record("verification", "complete", code) },
			})),
			interactive("Rating", widgets.NewRating(widgets.RatingOptions{
				DefaultValue:  3,
				Interactive:   true,
				OnValueChange: func(v int) { act.record("rating", "change", v) },
			})),
			interactive("Text area", widgets.NewTextArea(widgets.TextAreaOptions{
				Label:       "Notes",
				Placeholder: "Anything we should know?",
				HelperText:  "Optional",
				MaxLength:   120,
				Size:        components.SizeSmall,
				OnChange:    func(s string) { act.record("textarea", "change", len([]rune(s))) },
			})),
		},
	}
}

func pickersPage(cfg config.Config, act *activity, today func() time.Time) *page {
	entries := []*entry{}
	tp, err := widgets.NewTimePicker(widgets.TimePickerOptions{
		Interval: cfg.TimePicker.Interval,
		OnChange: func(label string) { act.record("time", "change", label) },
	})
	if err != nil {
		entries = append(entries, showcase("Time", components.NewAlert(err.Error()).WithVariant(components.VariantDanger)))
	} else {
		entries = append(entries, interactive("Time", tp))
	}
	entries = append(entries,
		interactive("Date", widgets.NewDatePicker(widgets.DatePickerOptions{
			Today:    today,
			OnChange: func(d time.Time) { act.record("date", "change", d.Format(time.DateOnly)) },
		})),
		interactive("Menu", widgets.NewButtonDropdown(widgets.ButtonDropdownOptions{
			Label: "Export",
			Options: []widgets.DropdownOption{
				{Value: "csv", Label: "CSV"},
				{Value: "json", Label: "JSON"},
				{Value: "pdf", Label: "PDF", Disabled: true},
			},
			Filterable: true,
			OnSelect:   func(v string) { act.record("menu", "select", v) },
		})),
		interactive("Upload", widgets.NewUploader(widgets.UploaderOptions{
			Label:        "Attachment",
			HelperText:   "Enter to browse, or drop a file here",
			OnChange:     func(paths []string) { act.record("uploader", "change", strings.Join(paths, ",")) },
			OnOpenChange: func(open bool) { act.record("uploader", "open", open) },
		})),
		interactive("Dropzone", widgets.NewUploader(widgets.UploaderOptions{
			Variant:  widgets.UploaderDropzone,
			Multiple: true,
			OnChange: func(paths []string) { act.record("dropzone", "change", len(paths)) },
		})),
		interactive("Media", widgets.NewUploader(widgets.UploaderOptions{
			Variant:      widgets.UploaderMedia,
			AllowedTypes: []string{".png", ".jpg", ".gif", ".mp4"},
			OnChange:     func(paths []string) { act.record("media", "change", strings.Join(paths, ",")) },
		})),
	)
	return &page{id: "pickers", title: "Pickers", entries: entries}
}

func overlaysPage(cfg config.Config, act *activity, modal *widgets.Modal) *page {
	return &page{
		id:    "overlays",
		title: "Overlays",
		entries: []*entry{
			interactive("Tooltip", widgets.NewTooltip(components.NeutralButton("Hover me").WithSize(components.SizeSmall), widgets.TooltipOptions{
				Content:      "Tooltips open on hover and focus",
				Side:         cfg.PlacementSide(),
				OnOpenChange: func(open bool) { act.record("tooltip", "open", open) },
			})),
			interactive("Modal", newLauncher("Open dialog", components.VariantDanger, func() tea.Cmd {
				modal.Show()
				return nil
			})),
		},
	}
}
