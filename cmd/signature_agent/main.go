// Package main implements the signature_agent CLI for validating, migrating and resolving email signatures.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/signature-customizer/internal/config"
	"github.com/jonathan/signature-customizer/internal/logging"
	"github.com/jonathan/signature-customizer/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:               "signature_agent",
	Short:             "Email signature document tool",
	Long:              "signature_agent creates, validates, normalizes, migrates and resolves email signature documents.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string
)

// Shared state built by setup before any subcommand runs
var (
	cfg     = config.Defaults()
	logger  = logging.Nop()
	printer = observability.NewPrinter(os.Stderr)
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed summaries")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console, json")
}

// setup resolves configuration from file, environment and flags (in increasing
// precedence) and builds the logger. Verbose summaries go to the command's
// error stream so stdout carries only the JSON output.
func setup(cmd *cobra.Command, _ []string) error {
	printer = observability.NewPrinter(cmd.ErrOrStderr())

	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	if err := fileCfg.ApplyEnv(); err != nil {
		return err
	}
	if logLevel != "" {
		fileCfg.LogLevel = logLevel
	}
	if logFormat != "" {
		fileCfg.LogFormat = logFormat
	}
	if verbose {
		fileCfg.Verbose = true
	}

	if err := fileCfg.Validate(); err != nil {
		return err
	}
	cfg = fileCfg.MergeWithDefaults(config.Defaults())

	built, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger = built
	logger.Debug("configuration loaded",
		zap.String("config", configPath),
		zap.String("log_level", cfg.LogLevel),
		zap.String("output_dir", cfg.OutputDir),
		zap.Bool("strict", cfg.Strict),
	)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
