package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/bits/config"
)

// loadConfig merges, in increasing priority, the defaults, the config file
// and the command-line flags. A missing config file is only an error if it
// was requested explicitly.
func loadConfig(cmd *cobra.Command, file string) (*config.Config, error) {
	vip := viper.New()

	if file != "" {
		err := loadConfigFile(vip, smutil.GetCanonicalPath(file))
		if err != nil && (cmd.Flags().Changed("config") || !errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(vip *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	vip.SetConfigFile(path)
	return vip.ReadInConfig()
}
