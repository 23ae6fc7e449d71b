package gui

import (
	"maps"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Glyph names looked up through ThemeDefinition.Character.
const (
	GlyphPopup          = "POPUP"
	GlyphPopupSeparator = "POPUP_SEPARATOR"
	GlyphChecked        = "CHECKED"
	GlyphUnchecked      = "UNCHECKED"
	GlyphScrollThumb    = "SCROLL_THUMB"
	GlyphScrollTrack    = "SCROLL_TRACK"
)

// Fallback glyphs used when a theme does not define one.
const (
	SymbolSingleLineVertical   = '│'
	SymbolTriangleDownPointing = '▼'
	SymbolBlock                = '█'
	SymbolLightShade           = '░'
	SymbolCheckMark            = 'x'
	SymbolBlank                = ' '
)

// ThemeDefinition holds the styles of one component kind.
type ThemeDefinition struct {
	Normal      lipgloss.Style
	PreLight    lipgloss.Style
	Selected    lipgloss.Style
	Active      lipgloss.Style
	Insensitive lipgloss.Style

	CursorVisible bool

	glyphs map[string]rune
}

// Character returns the named glyph, or fallback when it is not defined.
func (d *ThemeDefinition) Character(name string, fallback rune) rune {
	if d == nil {
		return fallback
	}
	if r, ok := d.glyphs[name]; ok {
		return r
	}
	return fallback
}

// WithCharacter returns a copy of d with the named glyph set.
func (d ThemeDefinition) WithCharacter(name string, r rune) *ThemeDefinition {
	glyphs := make(map[string]rune, len(d.glyphs)+1)
	for k, v := range d.glyphs {
		glyphs[k] = v
	}
	glyphs[name] = r
	d.glyphs = glyphs
	return &d
}

// Theme maps component kinds to definitions, falling back to a default one.
type Theme struct {
	mu    sync.RWMutex
	def   *ThemeDefinition
	kinds map[string]*ThemeDefinition
}

// NewTheme returns a theme whose every kind resolves to def.
func NewTheme(def *ThemeDefinition) *Theme {
	return &Theme{def: def, kinds: make(map[string]*ThemeDefinition)}
}

// DefaultDefinition returns the fallback definition.
func (t *Theme) DefaultDefinition() *ThemeDefinition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.def
}

// Definition returns the definition registered for kind, or the default one.
func (t *Theme) Definition(kind string) *ThemeDefinition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if d, ok := t.kinds[kind]; ok {
		return d
	}
	return t.def
}

// SetDefinition registers a definition for kind.
func (t *Theme) SetDefinition(kind string, d *ThemeDefinition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.kinds[kind] = d
}

// Palette holds the colors a theme is derived from.
type Palette struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
}

// DefaultPalette is the dark palette used by DefaultTheme.
var DefaultPalette = Palette{
	Background:     "#0a0a0b",
	Surface:        "#18181b",
	SurfaceVariant: "#27272a",
	Text:           "#fafafa",
	Muted:          "#a1a1aa",
	Accent:         "#4ade80",
	Border:         "#3f3f46",
}

var (
	defaultTheme     *Theme
	defaultThemeOnce sync.Once
)

// DefaultTheme uses DefaultPalette, a visible cursor and the fallback glyphs.
func DefaultTheme() *Theme {
	defaultThemeOnce.Do(func() {
		defaultTheme = NewPaletteTheme(DefaultPalette, true, nil)
	})
	return defaultTheme
}

// NewPaletteTheme builds component and window styles from p.
// glyphs maps glyph names (GlyphPopup, ...) to runes; missing names use the fallbacks.
func NewPaletteTheme(p Palette, cursorVisible bool, glyphs map[string]rune) *Theme {
	def := &ThemeDefinition{
		Normal:        lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface),
		PreLight:      lipgloss.NewStyle().Foreground(p.Text).Background(p.SurfaceVariant),
		Selected:      lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Bold(true),
		Active:        lipgloss.NewStyle().Foreground(p.Accent).Background(p.SurfaceVariant).Bold(true),
		Insensitive:   lipgloss.NewStyle().Foreground(p.Muted).Background(p.Surface),
		CursorVisible: cursorVisible,
		glyphs:        maps.Clone(glyphs),
	}
	theme := NewTheme(def)

	window := *def
	window.Normal = lipgloss.NewStyle().Foreground(p.Border).Background(p.Surface)
	window.Active = lipgloss.NewStyle().Foreground(p.Accent).Background(p.Surface).Bold(true)
	theme.SetDefinition(KindWindow, &window)

	return theme
}
