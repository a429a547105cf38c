// neondodge is a neon arcade game: steer a ball around bouncing squares
// and collect every target to clear the level.
//
// Usage:
//
//	neondodge play            - Play in the terminal
//	neondodge window          - Play in a desktop window
//	neondodge menu            - Pick difficulty and level, then play
//	neondodge list            - List available games
//	neondodge sensors         - Probe motion sensors
//	neondodge config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--level <n>           - Start level
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/neon-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neondodge",
	Short: "Neon Dodge - dodge the squares, grab the dots",
	Long: `Neon Dodge is a small real-time arcade game. Move the ball with the
arrow keys (or tilt your device), avoid the bouncing squares and collect
every target to clear the level. Clear level 3 to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Pick difficulty and level, then play
  list     - Show all available games
  sensors  - Probe motion sensors and print readings
  config   - Print the default configuration

Examples:
  neondodge play
  neondodge play --difficulty hard --level 2
  neondodge window --seed 42
  neondodge sensors --count 10
  neondodge config > ~/.arcade/configs/dodge.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Start level (0 = config default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sensorsCmd)
	rootCmd.AddCommand(configCmd)
}
