package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tuikit/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config, schema and log locations.
func (r *ConfigRenderer) RenderPaths(configFile, schemaFile, logDir string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.SuccessStyle.Render("present")
	if !exists {
		status = r.theme.BadgeMuted.Render("created on first run")
	}

	return fmt.Sprintf(
		"\n  %s Config %s %s\n  %s Schema %s\n  %s Logs   %s\n",
		iconStyle.Render(IconConfig), pathStyle.Render(configFile), status,
		iconStyle.Render(IconInfo), pathStyle.Render(schemaFile),
		iconStyle.Render(IconLogs), pathStyle.Render(logDir),
	)
}

// RenderSummary renders the effective settings.
func (r *ConfigRenderer) RenderSummary(cfg *config.Config) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	rows := [][2]string{
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", cfg.Logging.File},
		{"appearance.color_scheme", cfg.Appearance.ColorScheme},
		{"appearance.cursor_visible", fmt.Sprint(cfg.Appearance.CursorVisible)},
		{"combo.drop_down_rows", fmt.Sprint(cfg.Combo.DropDownRows)},
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-26s %s\n", keyStyle.Render(row[0]), valStyle.Render(row[1]))
	}

	palette := cfg.Appearance.ActivePalette()
	swatches := []string{palette.Background, palette.Surface, palette.SurfaceVariant, palette.Text, palette.Muted, palette.Accent, palette.Border}
	cells := make([]string, 0, len(swatches))
	for _, hex := range swatches {
		cells = append(cells, lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	fmt.Fprintf(&sb, "  %-26s %s\n", keyStyle.Render("palette"), strings.Join(cells, ""))

	return r.theme.Box.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
