package config

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig collects every problem in config into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "off", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, off (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: json, console (got: %s)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}

	switch config.Appearance.ColorScheme {
	case ColorSchemeDark, ColorSchemeLight:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.color_scheme must be one of: dark, light (got: %s)", config.Appearance.ColorScheme))
	}

	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validateGlyphs(config.Appearance.Glyphs)...)

	if config.Combo.DropDownRows < 0 {
		validationErrors = append(validationErrors, "combo.drop_down_rows must be non-negative (0 shows every item)")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePalette(prefix string, p ColorPalette) []string {
	var errs []string
	colors := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, c := range colors {
		if !hexColorPattern.MatchString(c.value) {
			errs = append(errs, fmt.Sprintf("%s.%s must be a hex color like #rrggbb (got: %q)", prefix, c.name, c.value))
		}
	}
	return errs
}

// validateGlyphs requires each glyph to be a single rune occupying one terminal cell.
func validateGlyphs(g GlyphConfig) []string {
	var errs []string
	glyphs := []struct {
		name  string
		value string
	}{
		{"popup", g.Popup},
		{"popup_separator", g.PopupSeparator},
		{"checked", g.Checked},
		{"unchecked", g.Unchecked},
		{"scroll_thumb", g.ScrollThumb},
		{"scroll_track", g.ScrollTrack},
	}
	for _, gl := range glyphs {
		if utf8.RuneCountInString(gl.value) != 1 || ansi.StringWidth(gl.value) != 1 {
			errs = append(errs, fmt.Sprintf("appearance.glyphs.%s must be a single one-column character (got: %q)", gl.name, gl.value))
		}
	}
	return errs
}
