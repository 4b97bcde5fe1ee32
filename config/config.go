package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"
)

const (
	MaxGroupSize = 64
	MaxDumpWidth = 64
	MinDumpWidth = 1
)

const (
	DefaultConfigDirName  = ".bitcli"
	DefaultConfigFileName = "config.toml"

	DefaultPad       = true
	DefaultGroupSize = 8
	DefaultLineWidth = 8
	DefaultDumpWidth = 8
	DefaultLogLevel  = "info"
)

var DefaultConfigFile = filepath.Join(smutil.GetUserHomeDirectory(), DefaultConfigDirName, DefaultConfigFileName)

type Config struct {
	// Pad completes a trailing partial byte with zero bits when decoding
	// binary text to bytes. Without it, the partial byte is dropped.
	Pad bool `mapstructure:"pad"`

	// Text output layout: bits per space-separated group (0 disables
	// grouping) and groups per line (0 keeps everything on one line).
	GroupSize uint `mapstructure:"group-size"`
	LineWidth uint `mapstructure:"line-width"`

	// Bytes per row of the dump table.
	DumpWidth uint `mapstructure:"dump-width"`

	LogLevel string `mapstructure:"log-level"`
}

func (cfg *Config) Validate() error {
	if cfg.GroupSize > MaxGroupSize {
		return fmt.Errorf("invalid `GroupSize`; expected: <= %d, given: %d", MaxGroupSize, cfg.GroupSize)
	}

	if cfg.DumpWidth > MaxDumpWidth {
		return fmt.Errorf("invalid `DumpWidth`; expected: <= %d, given: %d", MaxDumpWidth, cfg.DumpWidth)
	}

	if cfg.DumpWidth < MinDumpWidth {
		return fmt.Errorf("invalid `DumpWidth`; expected: >= %d, given: %d", MinDumpWidth, cfg.DumpWidth)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`; given: %q: %w", cfg.LogLevel, err)
	}

	return nil
}

// Level parses LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(cfg.LogLevel))
	return level, err
}

func DefaultConfig() *Config {
	return &Config{
		Pad:       DefaultPad,
		GroupSize: DefaultGroupSize,
		LineWidth: DefaultLineWidth,
		DumpWidth: DefaultDumpWidth,
		LogLevel:  DefaultLogLevel,
	}
}
