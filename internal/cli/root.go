// Package cli implements the command-line interface for rubikscube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rashmi-kavindya/RubiksCube/internal/config"
	"github.com/Rashmi-kavindya/RubiksCube/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
	journal    bool

	// Loaded by the root PersistentPreRunE
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubikscube",
	Short: "3x3x3 twisty puzzle",
	Long: `rubikscube - a 3x3x3 twisty puzzle for the terminal.

Turn layers with the move tokens U+ U- B+ B- R+ R- L+ L- F+ F- (EX ends a
session), either interactively with 'rubikscube play', one-shot with
'rubikscube apply', or over HTTP with 'rubikscube serve'.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubikscube/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&journal, "journal", false, "Record moves in the journal database")
}

// loadRuntime loads the config and builds the logger.
func loadRuntime(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.New(level)

	if journal {
		cfg.Journal.Enabled = true
	}
	return nil
}
