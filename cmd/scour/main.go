package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scour/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded configuration and logger, shared by subcommands
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scour",
	Short: "scour - parallel keyword search over text files",
	Long: `scour performs bulk keyword search across a directory tree of text
files, reporting which files contain each keyword (case-insensitive
substring match) and how long the concurrent scan took.

The scan runs under one of two concurrency models:
  isolated - workers keep private state and hand results over a channel
  shared   - workers merge into one aggregate behind a mutex

Both models produce identical result membership; only timing differs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		level, lerr := zapcore.ParseLevel(cfg.Logging.Level)
		if lerr != nil {
			level = zapcore.InfoLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".scour.yaml", "path to config file")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
