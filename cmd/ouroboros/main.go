// ouroboros is a grid snake game for the terminal.
//
// Usage:
//
//	ouroboros                - Play in this terminal
//	ouroboros play           - Same as above
//	ouroboros serve          - Start SSH server for remote play
//	ouroboros sessions       - Show recent SSH sessions
//	ouroboros config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write debug log to a file
//	--db <path>        - Set session log path (default: ~/.ouroboros/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ouroboros/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ouroboros",
	Short: "Ouroboros - snake in your terminal",
	Long: `Ouroboros is a grid snake game played in the terminal.

The snake moves one cell every tick. Eat the nibble to grow; running
into yourself or off the board starts a fresh round right away.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  sessions  - Show recent SSH sessions
  config    - Print the effective configuration

Examples:
  ouroboros
  ouroboros play --seed 42
  ouroboros serve --ssh :2222
  ouroboros config --config ./my.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug log to this file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ouroboros/sessions.db", "Path to SSH session log database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
