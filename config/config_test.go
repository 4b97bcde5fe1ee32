package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bits/config"
)

func TestValidateDefault(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, level)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		valid  bool
	}{
		{"no grouping", func(c *config.Config) { c.GroupSize = 0 }, true},
		{"max group size", func(c *config.Config) { c.GroupSize = config.MaxGroupSize }, true},
		{"group size too large", func(c *config.Config) { c.GroupSize = config.MaxGroupSize + 1 }, false},
		{"zero dump width", func(c *config.Config) { c.DumpWidth = 0 }, false},
		{"dump width too large", func(c *config.Config) { c.DumpWidth = config.MaxDumpWidth + 1 }, false},
		{"debug level", func(c *config.Config) { c.LogLevel = "debug" }, true},
		{"unknown level", func(c *config.Config) { c.LogLevel = "loud" }, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tc.modify(cfg)
			if tc.valid {
				require.NoError(t, cfg.Validate())
			} else {
				require.Error(t, cfg.Validate())
			}
		})
	}
}

func TestDeriveDumpLayout(t *testing.T) {
	t.Parallel()
	cfg := *config.DefaultConfig()
	cfg.DumpWidth = 4

	require.Equal(t, config.DumpLayout{RowNumBytes: 4}, config.DeriveDumpLayout(cfg, 0))
	require.Equal(t, config.DumpLayout{RowNumBytes: 4, TrailingBits: 7}, config.DeriveDumpLayout(cfg, 7))
	require.Equal(t, config.DumpLayout{NumRows: 2, RowNumBytes: 4, LastRowNumBytes: 4}, config.DeriveDumpLayout(cfg, 64))
	require.Equal(t, config.DumpLayout{NumRows: 3, RowNumBytes: 4, LastRowNumBytes: 1, TrailingBits: 3}, config.DeriveDumpLayout(cfg, 75))
}
