package styles

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/ui/gui"
)

// NewGUITheme builds the widget theme from the active palette and glyph table of cfg.
func NewGUITheme(cfg *config.Config) *gui.Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appearance := cfg.Appearance
	p := appearance.ActivePalette()

	palette := gui.Palette{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
	}
	return gui.NewPaletteTheme(palette, appearance.CursorVisible, glyphTable(appearance.Glyphs))
}

func glyphTable(g config.GlyphConfig) map[string]rune {
	table := make(map[string]rune, 6)
	set := func(name, value string) {
		if r, size := utf8.DecodeRuneInString(value); size > 0 && r != utf8.RuneError {
			table[name] = r
		}
	}
	set(gui.GlyphPopup, g.Popup)
	set(gui.GlyphPopupSeparator, g.PopupSeparator)
	set(gui.GlyphChecked, g.Checked)
	set(gui.GlyphUnchecked, g.Unchecked)
	set(gui.GlyphScrollThumb, g.ScrollThumb)
	set(gui.GlyphScrollTrack, g.ScrollTrack)
	return table
}
