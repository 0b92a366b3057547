// Package main is the musiclib CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KidCrippler/music-library-mcp/internal/config"
	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/logging"
)

var (
	flagConfig string
	flagSource string
	flagFormat string
)

var rootCmd = &cobra.Command{
	Use:   "musiclib",
	Short: "Music library index, query and enrichment tool",
	Long: `musiclib loads a songs JSON document (local file or URL), builds
name and collaboration indexes over it, and answers queries from the command
line or over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "songs document path or URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "table", "output format: table, json, csv")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(collabsCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(applyReviewsCmd)
}

// loadConfig layers the config file and environment, then applies the
// --source override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}

func openLibrary() (*library.Library, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg.Source)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
