// Package config provides configuration management for tuikit with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for tuikit.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" json:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" json:"appearance" toml:"appearance"`
	Combo      ComboConfig      `mapstructure:"combo" json:"combo" toml:"combo"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" json:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format     string `mapstructure:"format" json:"format" toml:"format" jsonschema:"enum=json,enum=console"`
	File       string `mapstructure:"file" json:"file" toml:"file" jsonschema:"description=Log file name inside the state log directory"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" json:"max_age_days" toml:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" json:"compress" toml:"compress"`
}

// ColorPalette holds the semantic colors a theme is built from.
type ColorPalette struct {
	Background     string `mapstructure:"background" json:"background" toml:"background"`
	Surface        string `mapstructure:"surface" json:"surface" toml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" json:"surface_variant" toml:"surface_variant"`
	Text           string `mapstructure:"text" json:"text" toml:"text"`
	Muted          string `mapstructure:"muted" json:"muted" toml:"muted"`
	Accent         string `mapstructure:"accent" json:"accent" toml:"accent"`
	Border         string `mapstructure:"border" json:"border" toml:"border"`
}

// GlyphConfig holds the characters drawn by the widgets.
type GlyphConfig struct {
	Popup          string `mapstructure:"popup" json:"popup" toml:"popup"`
	PopupSeparator string `mapstructure:"popup_separator" json:"popup_separator" toml:"popup_separator"`
	Checked        string `mapstructure:"checked" json:"checked" toml:"checked"`
	Unchecked      string `mapstructure:"unchecked" json:"unchecked" toml:"unchecked"`
	ScrollThumb    string `mapstructure:"scroll_thumb" json:"scroll_thumb" toml:"scroll_thumb"`
	ScrollTrack    string `mapstructure:"scroll_track" json:"scroll_track" toml:"scroll_track"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	// ColorScheme selects the palette: "dark" or "light".
	ColorScheme   string       `mapstructure:"color_scheme" json:"color_scheme" toml:"color_scheme" jsonschema:"enum=dark,enum=light"`
	DarkPalette   ColorPalette `mapstructure:"dark_palette" json:"dark_palette" toml:"dark_palette"`
	LightPalette  ColorPalette `mapstructure:"light_palette" json:"light_palette" toml:"light_palette"`
	CursorVisible bool         `mapstructure:"cursor_visible" json:"cursor_visible" toml:"cursor_visible"`
	Glyphs        GlyphConfig  `mapstructure:"glyphs" json:"glyphs" toml:"glyphs"`
}

// ActivePalette returns the palette selected by ColorScheme.
func (a AppearanceConfig) ActivePalette() ColorPalette {
	if strings.EqualFold(a.ColorScheme, ColorSchemeLight) {
		return a.LightPalette
	}
	return a.DarkPalette
}

// ComboConfig holds ComboCheckList settings.
type ComboConfig struct {
	// DropDownRows limits the popup height; 0 shows every item.
	DropDownRows int `mapstructure:"drop_down_rows" json:"drop_down_rows" toml:"drop_down_rows" jsonschema:"minimum=0"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("TUIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"logging.level":             "LOG_LEVEL",
		"logging.format":            "LOG_FORMAT",
		"appearance.color_scheme":   "COLOR_SCHEME",
		"appearance.cursor_visible": "CURSOR_VISIBLE",
		"combo.drop_down_rows":      "DROP_DOWN_ROWS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "TUIKIT_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:  v,
		logger: zerolog.Nop(),
	}, nil
}

// SetLogger sets the logger used to report reload failures.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.handleFileEvent(e)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	m.mu.RLock()
	logger := m.logger
	m.mu.RUnlock()

	logger.Debug().
		Str("file", e.Name).
		Str("op", e.Op.String()).
		Msg("config file changed")

	if err := m.reload(); err != nil {
		logger.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		return
	}

	m.notifyCallbacks()
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) notifyCallbacks() {
	m.mu.RLock()
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		cfg := config
		callback(&cfg)
	}
}

// reload re-reads the config file and swaps the current config when it is valid.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// decode unmarshals and validates the viper state. Caller holds the lock.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Appearance.ColorScheme = strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme))
	if config.Appearance.ColorScheme == "" {
		config.Appearance.ColorScheme = ColorSchemeDark
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.cursor_visible", defaults.Appearance.CursorVisible)
	setPaletteDefaults(m.viper, "appearance.dark_palette", defaults.Appearance.DarkPalette)
	setPaletteDefaults(m.viper, "appearance.light_palette", defaults.Appearance.LightPalette)

	glyphs := defaults.Appearance.Glyphs
	m.viper.SetDefault("appearance.glyphs.popup", glyphs.Popup)
	m.viper.SetDefault("appearance.glyphs.popup_separator", glyphs.PopupSeparator)
	m.viper.SetDefault("appearance.glyphs.checked", glyphs.Checked)
	m.viper.SetDefault("appearance.glyphs.unchecked", glyphs.Unchecked)
	m.viper.SetDefault("appearance.glyphs.scroll_thumb", glyphs.ScrollThumb)
	m.viper.SetDefault("appearance.glyphs.scroll_track", glyphs.ScrollTrack)

	m.viper.SetDefault("combo.drop_down_rows", defaults.Combo.DropDownRows)
}

func setPaletteDefaults(v *viper.Viper, prefix string, p ColorPalette) {
	v.SetDefault(prefix+".background", p.Background)
	v.SetDefault(prefix+".surface", p.Surface)
	v.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	v.SetDefault(prefix+".text", p.Text)
	v.SetDefault(prefix+".muted", p.Muted)
	v.SetDefault(prefix+".accent", p.Accent)
	v.SetDefault(prefix+".border", p.Border)
}

// createDefaultConfig writes the defaults as TOML and generates the schema next to it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if !errors.As(err, &exists) {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	m.viper.SetConfigFile(configFile)

	if err := GenerateSchemaFile(); err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	return nil
}

// ConfigFileUsed returns the path of the file viper loaded, if any.
func (m *Manager) ConfigFileUsed() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the current global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback on the global manager.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}

// GetManager returns the global manager, nil before Init.
func GetManager() *Manager {
	return globalManager
}
