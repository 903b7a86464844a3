// Package cmd provides CLI commands for mira.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sudhansu1991/MIrA/config"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mira",
	Short: "Convert the MIrA manuscript catalogue to Wikidata-aligned RDF",
	Long: `Mira converts the MIrA TEI/XML manuscript catalogue into RDF Turtle
aligned with the Wikidata WikiProject Manuscripts data model, and
computes network metrics over the catalogue's CSV graph exports.

Authority records (people, places, texts, libraries) that carry a
Wikidata reference are emitted as wd: entities; everything else gets a
stable mira: IRI derived from its catalogue id.

Examples:
  mira convert --mss data/mss_compiled.xml --out data/rdf/mira.ttl
  mira validate --verbose
  mira metrics model1 --output-dir out/model1
  mira config init`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.mira/config.yaml)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig locates the config file and reads MIRA_* environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.mira")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MIRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration: the defaults, overlaid
// by the config file when one was found.
func loadConfig() *config.Config {
	path := viper.ConfigFileUsed()
	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		slog.Warn("ignoring unreadable config file", "path", path, "error", err)
		return config.DefaultConfig()
	}

	return cfg
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mira v0.2.0")
	},
}
