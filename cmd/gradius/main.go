// gradius is a side-scrolling shooter played in the terminal.
//
// Usage:
//
//	gradius                  - Start the game at the main menu
//	gradius play             - Same as above
//	gradius sim              - Run the simulation headless and print the last frame
//	gradius keys             - Show the effective key bindings
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Theme and key binding file (YAML or TOML)
//	--log-file <path>    - Append logs to this file (default: no logging)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gradius/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gradius",
	Short: "Gradius Elite - a terminal side-scroller",
	Long: `Gradius Elite is a side-scrolling shooter that runs in your terminal.
Steer the ship, shoot the incoming enemies and collect bonus coins.

Available commands:
  play     - Start the game (default)
  sim      - Run the simulation without a terminal
  keys     - Show key bindings

Examples:
  gradius
  gradius --seed 42
  gradius --config ./my-theme.toml --log-file /tmp/gradius.log
  gradius sim --ticks 500 --fire-every 3`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a theme/keys config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig resolves the configuration named by --config or found on the search path.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, source, nil
}
