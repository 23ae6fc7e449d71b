package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormatItems formats items the way the demo prints them: "[a, b]".
func FormatItems(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// ResultRenderer renders the outcome of the demo window.
type ResultRenderer struct {
	theme *Theme
}

// NewResultRenderer creates a new result renderer with the given theme.
func NewResultRenderer(theme *Theme) *ResultRenderer {
	return &ResultRenderer{theme: theme}
}

// RenderChecked renders the checked items, or a hint when nothing was confirmed.
func (r *ResultRenderer) RenderChecked(items []string, confirmed bool) string {
	if !confirmed {
		return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Subtle.Render("closed without confirming"))
	}
	glyph := IconCheckboxChecked
	if len(items) == 0 {
		glyph = IconCheckboxEmpty
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(glyph)
	count := r.theme.Badge.Render(fmt.Sprintf("%d checked", len(items)))
	return fmt.Sprintf("  %s %s %s", icon, count, r.theme.Normal.Render(FormatItems(items)))
}
