package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print where configuration was read from and the resulting values as YAML.

Search order:
  1. --config path
  2. ~/.minesweeper/config.yaml
  3. ./configs/minesweeper.yaml
  4. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	source := config.Source(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(appConfig); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
