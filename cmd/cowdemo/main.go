// Package main is the entry point for the copy-on-write demo
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AdrianWangs/go-cow/config"
	"github.com/AdrianWangs/go-cow/internal/demo"
	"github.com/AdrianWangs/go-cow/pkg/logger"
)

var (
	configFile string
	logLevel   string
	logFormat  string
	colorMode  string

	// cfg is loaded once per run by rootCmd's PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cowdemo",
	Short: "Walk through borrowed and owned copy-on-write values",
	Long: `cowdemo strips spaces from text, builds owned and borrowed users and
appends to a lazily cloned buffer, tagging every value as Borrowed or Owned.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.SetLevel(cfg.LogLevel)
		if cfg.LogFormat == "json" {
			logger.UseJSONFormat()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debugf("running demo with config %+v", *cfg)
		return demo.Run(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a .toml or .json config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text|json)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colorize variant tags (auto|on|off)")

	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file or environment, then flags
func loadConfig() (*config.Config, error) {
	var loaded *config.Config
	if configFile != "" {
		var err error
		loaded, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		loaded = config.LoadFromEnv()
	}

	// Override with command line flags if provided
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if logFormat != "" {
		loaded.LogFormat = logFormat
	}
	if colorMode != "" {
		loaded.Color = colorMode
	}
	return loaded, nil
}
