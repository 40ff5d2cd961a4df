// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vidembed/internal/config"
	"vidembed/internal/provider"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagProviders []string
	flagJSON      bool
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// registry holds the providers enabled by cfg.
var registry *provider.Registry

var rootCmd = &cobra.Command{
	Use:   "vidembed [url]",
	Short: "Turn YouTube and Vimeo links into embed markup",
	Long: `vidembed parses YouTube and Vimeo URLs and renders the <iframe> markup
that embeds them, with per-provider player options such as suggested
videos or the title overlay.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	RunE:              embedRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&flagProviders, "providers", "p", nil, "Enabled providers, comma separated: youtube,vimeo")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	addEmbedFlags(rootCmd)

	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if len(flagProviders) > 0 {
		cfg.Providers = flagProviders
	}
	if flagDebug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging()

	registry, err = cfg.Registry()
	if err != nil {
		return fmt.Errorf("building provider registry: %w", err)
	}
	debugf("enabled providers: %s", strings.Join(registry.Names(), ", "))

	return nil
}

// setupLogging points logrus at stderr with the configured level and format.
func setupLogging() {
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !cfg.Debug})
	}
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
