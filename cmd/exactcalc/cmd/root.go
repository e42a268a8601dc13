// Package cmd implements the exactcalc command line.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exactcalc/internal/config"
	"github.com/zephyrtronium/exactcalc/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// Set by the root command before any subcommand runs.
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "exactcalc",
	Short: "Exact decimal calculator",
	Long: `exactcalc evaluates arithmetic expressions over exact decimal numbers.

Expressions use + - * / (or × ÷ −), parentheses, and decimal numerals.
Sums, differences, and products are exact. Quotients are rounded to a fixed
number of digits after the decimal point, with halves rounded away from zero.

Settings are read from the file named by --config or $EXACTCALC_CONFIG,
which may be TOML or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Resolve(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			c.Logging.Level = "debug"
		}
		cfg = c
		logger, logCloser = logging.New(os.Stderr, cfg.Logging)
		logger.Debug("loaded config", slog.String("path", cfgFile), slog.Int("precision", cfg.Precision))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}
