package config

// Default configuration constants
const (
	// Logging defaults
	defaultMaxLogSizeMB  = 10 // MB
	defaultMaxBackups    = 3  // backup files
	defaultMaxLogAgeDays = 7  // days

	// DefaultDropDownRows is the popup height used when no limit is configured.
	DefaultDropDownRows = 10

	ColorSchemeDark  = "dark"
	ColorSchemeLight = "light"
)

// DefaultConfig returns the default configuration values for tuikit.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			File:       "tuikit.log",
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
			Compress:   false,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeDark,
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#22c55e",
				Border:         "#d4d4d8",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#4ade80",
				Border:         "#3f3f46",
			},
			CursorVisible: true,
			Glyphs: GlyphConfig{
				Popup:          "▼",
				PopupSeparator: "│",
				Checked:        "x",
				Unchecked:      " ",
				ScrollThumb:    "█",
				ScrollTrack:    "░",
			},
		},
		Combo: ComboConfig{
			DropDownRows: DefaultDropDownRows,
		},
	}
}
