package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFilename is used when FileConfig.Filename is empty.
const DefaultLogFilename = "tuikit.log"

// FileConfig controls the rotating log file used while a TUI owns the terminal.
type FileConfig struct {
	Enabled       bool
	Dir           string
	Filename      string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotating file in cfg.Dir.
// The returned cleanup func closes the file and is safe to call when the file is disabled.
// Every entry carries the session field so interleaved runs can be told apart.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fileCfg.Enabled {
		if fileCfg.WriteToStderr {
			return New(cfg), noop, nil
		}
		return zerolog.Nop(), noop, nil
	}

	if err := os.MkdirAll(fileCfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("create log directory %s: %w", fileCfg.Dir, err)
	}

	name := fileCfg.Filename
	if name == "" {
		name = DefaultLogFilename
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(fileCfg.Dir, name),
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	}

	var w io.Writer = rotator
	if fileCfg.WriteToStderr {
		w = io.MultiWriter(rotator, os.Stderr)
	}

	fileLogCfg := cfg
	if fileLogCfg.Format == "" {
		fileLogCfg.Format = "json"
	}

	logger := NewWithWriter(fileLogCfg, w).
		With().
		Str("session", ShortSessionID(GenerateSessionID())).
		Logger()

	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
