package components

import (
	"testing"

	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "light", want: "light"},
		{name: "", want: "light"},
		{name: " Dark ", want: "dark"},
		{name: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			theme, err := ThemeByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, theme.Name)
		})
	}
}

func TestDarkThemeDiffersFromLight(t *testing.T) {
	t.Parallel()

	light, dark := LightTheme(), DarkTheme()
	assert.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)
	assert.Equal(t, light.Palette.Primary, dark.Palette.Primary)
}

func TestVariantRegistryCoversEveryKind(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	for _, kind := range []Kind{KindButton, KindBadge, KindChip, KindAlert, KindBanner, KindToast} {
		for _, v := range allVariants() {
			assert.NotNil(t, theme.Variants.Get(kind, v), "%s/%s", kind, v)
		}
	}

	var empty *VariantRegistry
	assert.Nil(t, empty.Get(KindButton, VariantPrimary))
}

func TestSizeTokens(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	assert.Equal(t, SizeFor(theme, SizeMedium), SizeFor(theme, Size(42)))
	assert.Less(t, SizeFor(theme, SizeSmall).Width, SizeFor(theme, SizeLarge).Width)

	for raw, want := range map[string]Size{"sm": SizeSmall, "MD": SizeMedium, "large": SizeLarge, "": SizeMedium} {
		got, err := ParseSize(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.String())
	}
	_, err := ParseSize("xxl")
	require.Error(t, err)
}

func TestSpacingValue(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	assert.Equal(t, 0, SpacingValue(theme, SpacingNone))
	assert.Equal(t, SpacingValue(theme, SpacingMedium), SpacingValue(theme, SpacingSize(99)))
}

func TestInputStyleStates(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	assert.Equal(t, theme.Input.Error, InputStyle(theme, InputError))
	assert.Equal(t, theme.Input.Default, InputStyle(theme, InputState(77)))
	assert.Equal(t, "success", InputSuccess.String())
}

func TestAddAppliersRunsAfterExisting(t *testing.T) {
	t.Parallel()

	width := func(n int) StyleFunc {
		return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Width(n) }
	}

	b := NewBaseComponent()
	b.SetAppliers(width(5))
	b.AddAppliers(width(10))
	assert.Equal(t, 10, b.ComputeStyle(LightTheme()).GetWidth())
}

func TestRenderHelper(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Render(nil, DefaultContext()))
	assert.Equal(t, "x", Render(ui.Static("x"), DefaultContext()))
	assert.Equal(t, "fn", Render(ui.RenderableFunc(func() string { return "fn" }), DefaultContext()))
}

func TestVariantHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "danger", VariantDanger.String())
	assert.Equal(t, "✓", VariantSuccess.Icon())
	theme := LightTheme()
	assert.Equal(t, theme.Palette.Warning, VariantWarning.Slot()(theme.Palette))
}
