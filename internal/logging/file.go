package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewWithFile creates a logger that also writes to a rotating file when
// fileCfg is enabled. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return New(cfg), func() {}, fmt.Errorf("create log dir: %w", err)
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fileCfg.LogDir,
		MaxSizeMB:  fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return New(cfg), func() {}, err
	}

	// The file always receives JSON.
	var w io.Writer = rotator
	if fileCfg.WriteToStderr {
		var stderr io.Writer = os.Stderr
		if cfg.Format != "json" {
			stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		}
		w = zerolog.MultiLevelWriter(rotator, stderr)
	}
	logger := zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
