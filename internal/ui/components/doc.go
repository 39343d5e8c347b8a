// Package components is loom's library of static, theme-aware terminal
// components built on lipgloss.
//
// # Rendering
//
// Every component renders through View, which uses the light theme, or
// ViewWithContext, which takes the theme and available width explicitly:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme()).WithWidth(60)
//	out := components.NewCard("Plan", components.NewText("Pro")).ViewWithContext(ctx)
//
// There is no global theme. Containers pass their context on to children.
//
// # Styling
//
// Themes hold the design tokens: the semantic Palette, spacing and size
// scales, borders, typography presets and input frames. Components resolve
// their look through StyleFuncs and the theme's VariantRegistry:
//
//	badge := components.NewBadge("beta").WithVariant(components.VariantInfo)
//	text := components.NewText("saved").WithAppliers(components.Foreground(components.PaletteSuccess))
//
// # Catalog
//
// Layout: Stack, Spacer, Divider, Container, Card, Panel.
// Text: Text, Header, Link.
// Status: Badge, Chip, Alert, Banner, Toast.
// Actions: Button.
// Loading: Loader, Skeleton, Progress, EmptyState, CarouselIndicator.
//
// Stateful widgets that react to keys and mouse events live in the
// widgets package and render with these components.
package components
