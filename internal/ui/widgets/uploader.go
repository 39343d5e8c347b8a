package widgets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/overlay"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UploaderVariant selects the look of an Uploader.
type UploaderVariant int

const (
	// UploaderCompact is a one-field picker showing the chosen name.
	UploaderCompact UploaderVariant = iota
	// UploaderDropzone is a large target inviting a drop.
	UploaderDropzone
	// UploaderMedia is a small tile for images and other media.
	UploaderMedia
)

const (
	defaultUploaderRows   = 6
	defaultChooseLabel    = "Choose file"
	defaultMediaLabel     = "Choose File"
	dropzonePrompt        = "Select or drop your file here"
	mediaLabelLimit       = 12
	mediaLabelKeep        = 9
	compactFileLabelWidth = 30
)

// UploaderOptions configures an Uploader.
type UploaderOptions struct {
	Variant    UploaderVariant
	Label      string
	HelperText string
	Error      bool
	Disabled   bool
	// Multiple keeps every chosen file instead of replacing the last one.
	Multiple bool
	// AllowedTypes are accepted name suffixes such as ".png". Empty
	// accepts every file.
	AllowedTypes []string
	// Directory is where browsing starts. Defaults to the working
	// directory.
	Directory string
	// Rows is the height of the file browser.
	Rows         int
	OnChange     func(paths []string)
	OnOpenChange func(open bool)
}

// Uploader chooses local files. Confirming opens a file browser below the
// field; pasting paths, which is what terminals do when a file is dropped
// on them, adds the files directly.
type Uploader struct {
	focusState
	hitbox
	keys     KeyMap
	variant  UploaderVariant
	label    string
	helper   string
	invalid  bool
	disabled bool
	multiple bool
	allowed  []string
	picker   filepicker.Model
	browser  *overlay.Machine
	files    []string
	boxTop   int
	boxRows  int
	onChange func(paths []string)
}

func NewUploader(opts UploaderOptions) *Uploader {
	picker := filepicker.New()
	picker.AllowedTypes = opts.AllowedTypes
	picker.ShowPermissions = false
	picker.AutoHeight = false
	picker.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	if opts.Directory != "" {
		picker.CurrentDirectory = opts.Directory
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = defaultUploaderRows
	}
	picker.SetHeight(rows)

	u := &Uploader{
		keys:     DefaultKeyMap(),
		variant:  opts.Variant,
		label:    opts.Label,
		helper:   opts.HelperText,
		invalid:  opts.Error,
		disabled: opts.Disabled,
		multiple: opts.Multiple,
		allowed:  opts.AllowedTypes,
		picker:   picker,
		onChange: opts.OnChange,
	}
	u.browser = overlay.New(overlay.Options{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		OnOpenChange:        opts.OnOpenChange,
	})
	return u
}

// Files are the chosen paths in the order they were added.
func (u *Uploader) Files() []string {
	return append([]string(nil), u.files...)
}

func (u *Uploader) IsOpen() bool {
	return u.browser.IsOpen()
}

// Open shows the file browser. The returned command lists the directory.
func (u *Uploader) Open() tea.Cmd {
	if u.disabled || u.browser.IsOpen() {
		return nil
	}
	u.browser.Show()
	return u.picker.Init()
}

func (u *Uploader) Close() {
	u.browser.Hide()
}

// Clear forgets every chosen file.
func (u *Uploader) Clear() {
	if len(u.files) == 0 {
		return
	}
	u.files = nil
	u.notify()
}

// SetError toggles the error look.
func (u *Uploader) SetError(invalid bool, helper string) {
	u.invalid, u.helper = invalid, helper
}

func (u *Uploader) accepts(path string) bool {
	if len(u.allowed) == 0 {
		return true
	}
	for _, ext := range u.allowed {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Add chooses paths. Files of a disallowed type are skipped. A
// multi-file uploader ignores paths it already holds; a single-file one
// keeps only the last path.
func (u *Uploader) Add(paths ...string) {
	if u.disabled {
		return
	}
	var added []string
	for _, p := range paths {
		if p != "" && u.accepts(p) {
			added = append(added, p)
		}
	}
	if len(added) == 0 {
		return
	}
	if u.multiple {
		for _, p := range added {
			if !slices.Contains(u.files, p) {
				u.files = append(u.files, p)
			}
		}
	} else {
		u.files = []string{added[len(added)-1]}
	}
	u.notify()
}

func (u *Uploader) notify() {
	if u.onChange != nil {
		u.onChange(u.Files())
	}
}

// Drop adds the regular files named in text, as pasted by a terminal when
// files are dragged onto it. Missing paths are ignored.
func (u *Uploader) Drop(text string) {
	var found []string
	for _, p := range splitDropped(text) {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		found = append(found, p)
	}
	u.Add(found...)
}

// splitDropped splits pasted paths on whitespace, honouring quotes and
// backslash-escaped spaces.
func splitDropped(text string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
		esc   bool
		begun bool
	)
	flush := func() {
		if begun {
			out = append(out, cur.String())
		}
		cur.Reset()
		begun = false
	}
	for _, r := range text {
		switch {
		case esc:
			cur.WriteRune(r)
			esc = false
		case r == '\\' && quote != '\'':
			esc, begun = true, true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote, begun = r, true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			begun = true
		}
	}
	flush()
	return out
}

// FileLabel is the text shown for the current choice.
func (u *Uploader) FileLabel() string {
	switch {
	case len(u.files) > 1 && u.variant == UploaderMedia:
		return fmt.Sprintf("%d items", len(u.files))
	case len(u.files) > 1:
		return fmt.Sprintf("%d files selected", len(u.files))
	case len(u.files) == 1 && u.variant == UploaderMedia:
		name := []rune(filepath.Base(u.files[0]))
		if len(name) > mediaLabelLimit {
			return string(name[:mediaLabelKeep]) + "..."
		}
		return string(name)
	case len(u.files) == 1:
		return filepath.Base(u.files[0])
	case u.variant == UploaderMedia && u.label != "":
		return u.label
	case u.variant == UploaderMedia:
		return defaultMediaLabel
	}
	return defaultChooseLabel
}

func (u *Uploader) Update(msg tea.Msg) tea.Cmd {
	if u.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !u.focused {
			return nil
		}
		if msg.Paste {
			u.Drop(string(msg.Runes))
			return nil
		}
		if !u.browser.IsOpen() {
			switch {
			case key.Matches(msg, u.keys.Confirm, u.keys.Toggle):
				return u.Open()
			case key.Matches(msg, u.keys.Clear):
				u.Clear()
			}
			return nil
		}
		if key.Matches(msg, u.keys.Cancel) {
			u.browser.Escape()
			return nil
		}
		return u.browse(msg)
	case tea.MouseMsg:
		if !isPress(msg) {
			return nil
		}
		_, y, inside := u.locate(msg)
		if !inside {
			u.browser.OutsideClick()
			return nil
		}
		if y >= u.boxTop && y < u.boxTop+u.boxRows {
			u.focused = true
			if u.browser.IsOpen() {
				u.browser.Hide()
				return nil
			}
			return u.Open()
		}
		return nil
	}
	return u.browse(msg)
}

func (u *Uploader) browse(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	u.picker, cmd = u.picker.Update(msg)
	if ok, path := u.picker.DidSelectFile(msg); ok {
		u.Add(path)
		if !u.multiple {
			u.browser.Hide()
		}
	}
	return cmd
}

func (u *Uploader) View() string {
	return u.ViewWithContext(components.DefaultContext())
}

func (u *Uploader) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	state := components.InputDefault
	switch {
	case u.disabled:
		state = components.InputDisabled
	case u.invalid:
		state = components.InputError
	case u.focused:
		state = components.InputFocus
	}
	frame := components.InputStyle(theme, state)
	caption := components.TypographyStyle(theme, components.TypographyCaption)
	strong := lipgloss.NewStyle().Bold(true)

	var box string
	switch u.variant {
	case UploaderDropzone:
		lines := []string{"⇪", caption.Render(dropzonePrompt)}
		if len(u.files) > 0 {
			lines = append(lines, strong.Render(components.Truncate(u.FileLabel(), len(dropzonePrompt))))
		}
		box = frame.Padding(1, 4).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	case UploaderMedia:
		body := lipgloss.JoinVertical(lipgloss.Center, "▣", caption.Render(u.FileLabel()))
		box = frame.Width(mediaLabelLimit + 2).Align(lipgloss.Center).Render(body)
	default:
		body := lipgloss.JoinVertical(lipgloss.Left,
			caption.Render(defaultChooseLabel),
			strong.Render(components.Truncate(u.FileLabel(), compactFileLabelWidth)),
		)
		box = frame.Width(compactFileLabelWidth + 2).Render(body)
	}

	rows := make([]string, 0, 4)
	u.boxTop = 0
	if u.label != "" && u.variant != UploaderMedia {
		rows = append(rows, components.TypographyStyle(theme, components.TypographyLabel).Render(u.label))
		u.boxTop = 1
	}
	rows = append(rows, box)
	u.boxRows = lipgloss.Height(box)

	if u.helper != "" {
		style := caption
		if u.invalid {
			style = components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), theme)
		}
		rows = append(rows, style.Render(u.helper))
	}
	if u.browser.IsOpen() {
		rows = append(rows,
			caption.Render(components.Truncate(u.picker.CurrentDirectory, 40)),
			strings.TrimRight(u.picker.View(), "\n"),
			caption.Render("enter select · esc close"),
		)
	}
	return u.measure(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
