package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/ui/gui"
)

func TestNewGUITheme_FollowsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ColorSchemeLight
	cfg.Appearance.CursorVisible = false
	cfg.Appearance.Glyphs.Checked = "✓"
	cfg.Appearance.Glyphs.Popup = ""

	def := styles.NewGUITheme(cfg).DefaultDefinition()
	require.NotNil(t, def)

	assert.False(t, def.CursorVisible)
	assert.Equal(t, '✓', def.Character(gui.GlyphChecked, 'x'))
	assert.Equal(t, '▼', def.Character(gui.GlyphPopup, '▼'), "empty glyphs fall back")
	assert.Equal(t, lipgloss.Color(cfg.Appearance.LightPalette.Accent), def.Selected.GetBackground())
}

func TestNewGUITheme_NilConfigUsesDefaults(t *testing.T) {
	def := styles.NewGUITheme(nil).DefaultDefinition()

	assert.True(t, def.CursorVisible)
	assert.Equal(t, lipgloss.Color(config.DefaultConfig().Appearance.DarkPalette.Surface), def.Normal.GetBackground())
}
