package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spacemeshos/bits/config"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the bitcli command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "bitcli",
		Short: "Convert data to and from its bits",
		Long: `bitcli reads and writes data bit by bit, least-significant bit first.
It can print the bits of any input, turn binary text back into bytes,
convert fixed-width integers and dump inputs as a table.`,
		Version:      fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", config.DefaultConfigFile, "config file path")
	addConfigFlags(flags, config.DefaultConfig())

	rootCmd.AddCommand(
		a.encodeCmd(),
		a.decodeCmd(),
		a.intCmd(),
		a.dumpCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers one flag per config.Config field, named after
// its mapstructure key so viper can bind them.
func addConfigFlags(flags *pflag.FlagSet, defaults *config.Config) {
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("pad", defaults.Pad, "pad a trailing partial byte with zeros instead of dropping it")
	flags.Uint("group-size", defaults.GroupSize, "bits per group in text output (0 to disable grouping)")
	flags.Uint("line-width", defaults.LineWidth, "groups per line in text output (0 for a single line)")
	flags.Uint("dump-width", defaults.DumpWidth, "bytes per row in dump output")
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.cfgFile)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.Named("bitcli")
	a.logger.Debug("loaded config", zap.String("file", a.cfgFile), zap.Any("config", cfg))
	return nil
}
