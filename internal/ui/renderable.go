// Package ui holds the contracts shared by loom's component packages.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	return f()
}

// Static is a Renderable that always renders the same string.
type Static string

// View returns s.
func (s Static) View() string {
	return string(s)
}
