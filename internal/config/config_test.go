package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "share"))
	return root
}

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), filePerm))
	return file
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, DefaultDropDownRows, cfg.Combo.DropDownRows)
	assert.Equal(t, "▼", cfg.Appearance.Glyphs.Popup)
	assert.Equal(t, "│", cfg.Appearance.Glyphs.PopupSeparator)
	assert.True(t, cfg.Appearance.CursorVisible)
}

func TestValidateConfig_CollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Appearance.ColorScheme = "sepia"
	cfg.Appearance.DarkPalette.Accent = "green"
	cfg.Appearance.Glyphs.Popup = "▼▼"
	cfg.Combo.DropDownRows = -1

	err := validateConfig(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "logging.level")
	assert.Contains(t, msg, "logging.format")
	assert.Contains(t, msg, "appearance.color_scheme")
	assert.Contains(t, msg, "appearance.dark_palette.accent")
	assert.Contains(t, msg, "appearance.glyphs.popup")
	assert.Contains(t, msg, "combo.drop_down_rows")
}

func TestValidateConfig_RejectsWideGlyph(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.Glyphs.Checked = "✅"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appearance.glyphs.checked")
}

func TestActivePalette(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.Appearance.DarkPalette, cfg.Appearance.ActivePalette())

	cfg.Appearance.ColorScheme = "LIGHT"
	assert.Equal(t, cfg.Appearance.LightPalette, cfg.Appearance.ActivePalette())
}

func TestManager_LoadCreatesDefaultFiles(t *testing.T) {
	root := setupXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, "config.schema.json"))
	assert.DirExists(t, filepath.Join(root, "state", appName))

	cfg := m.Get()
	assert.Equal(t, DefaultDropDownRows, cfg.Combo.DropDownRows)
	assert.Equal(t, ColorSchemeDark, cfg.Appearance.ColorScheme)
	assert.Equal(t, "#4ade80", cfg.Appearance.DarkPalette.Accent)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drop_down_rows")
}

func TestManager_LoadReadsFile(t *testing.T) {
	root := setupXDG(t)
	writeConfig(t, root, `
[combo]
drop_down_rows = 4

[appearance]
color_scheme = "light"
cursor_visible = false

[appearance.glyphs]
popup = "v"
`)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 4, cfg.Combo.DropDownRows)
	assert.Equal(t, ColorSchemeLight, cfg.Appearance.ColorScheme)
	assert.False(t, cfg.Appearance.CursorVisible)
	assert.Equal(t, "v", cfg.Appearance.Glyphs.Popup)
	assert.Equal(t, "│", cfg.Appearance.Glyphs.PopupSeparator, "unset keys keep defaults")
}

func TestManager_EnvOverridesFile(t *testing.T) {
	root := setupXDG(t)
	writeConfig(t, root, "[combo]\ndrop_down_rows = 4\n")
	t.Setenv("TUIKIT_DROP_DOWN_ROWS", "0")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, 0, m.Get().Combo.DropDownRows)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := setupXDG(t)
	writeConfig(t, root, "[combo]\ndrop_down_rows = -3\n")

	m, err := NewManager()
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combo.drop_down_rows")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	setupXDG(t)
	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Combo.DropDownRows = 99

	assert.Equal(t, DefaultDropDownRows, m.Get().Combo.DropDownRows)
}

func TestManager_FileEventReloadsAndNotifies(t *testing.T) {
	root := setupXDG(t)
	file := writeConfig(t, root, "[combo]\ndrop_down_rows = 4\n")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got []*Config
	m.OnConfigChange(func(c *Config) { got = append(got, c) })

	require.NoError(t, os.WriteFile(file, []byte("[combo]\ndrop_down_rows = 6\n"), filePerm))
	m.handleFileEvent(fsnotify.Event{Name: file, Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].Combo.DropDownRows)
	assert.Equal(t, 6, m.Get().Combo.DropDownRows)
}

func TestManager_InvalidReloadKeepsPreviousConfig(t *testing.T) {
	root := setupXDG(t)
	file := writeConfig(t, root, "[combo]\ndrop_down_rows = 4\n")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	called := false
	m.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(file, []byte("[combo]\ndrop_down_rows = -1\n"), filePerm))
	m.handleFileEvent(fsnotify.Event{Name: file, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, 4, m.Get().Combo.DropDownRows)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.StateHome)
}

func TestGetManDir(t *testing.T) {
	root := setupXDG(t)

	dir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "share", "man", "man1"), dir)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"drop_down_rows"`)
	assert.Contains(t, s, `"popup_separator"`)
	assert.Contains(t, s, "tuikit Configuration")
}
