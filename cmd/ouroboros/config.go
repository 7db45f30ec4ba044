package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ouroboros/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config, ~/.ouroboros/config.yaml, ./configs/ouroboros.yaml,
then the built-in defaults.

Examples:
  ouroboros config > ~/.ouroboros/config.yaml
  ouroboros config --config ./my.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
