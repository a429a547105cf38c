package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/games/dodge"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in game configuration as YAML. With --resolved, prints
the configuration after applying --config, --difficulty and --level.

Config search order:
  --config path
  ~/.arcade/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  neondodge config > ~/.arcade/configs/dodge.yaml
  neondodge config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		data := config.GetDefaultYAML(dodge.ID)
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", dodge.ID)
			os.Exit(1)
		}
		os.Stdout.Write(data) //nolint:errcheck // Nothing to do on a broken stdout
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // Nothing to do on a broken stdout
}
