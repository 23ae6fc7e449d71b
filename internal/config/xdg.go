package config

import (
	"os"
	"path/filepath"
)

const appName = "tuikit"

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
	// DataHome is the XDG data root itself, not an app subdirectory.
	DataHome string
}

// GetXDGDirs returns the XDG Base Directory paths for tuikit:
// - $XDG_CONFIG_HOME/tuikit (default: ~/.config/tuikit)
// - $XDG_STATE_HOME/tuikit (default: ~/.local/state/tuikit)
// - $XDG_DATA_HOME (default: ~/.local/share)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			StateHome:  devDir,
			DataHome:   filepath.Join(devDir, "share"),
		}, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	stateHome := os.Getenv("XDG_STATE_HOME")
	dataHome := os.Getenv("XDG_DATA_HOME")
	if configHome == "" || stateHome == "" || dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		if configHome == "" {
			configHome = filepath.Join(homeDir, ".config")
		}
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		if dataHome == "" {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
		DataHome:   dataHome,
	}, nil
}

// GetConfigDir returns the XDG config directory for tuikit.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetStateDir returns the XDG state directory for tuikit.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory inside the state dir.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetManDir returns the user man page directory for section 1.
func GetManDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, "man", "man1"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetSchemaFile returns the path of the generated JSON schema.
func GetSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.schema.json"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}

	return nil
}
