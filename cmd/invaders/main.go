// invaders is a terminal Space Invaders game.
//
// Usage:
//
//	invaders                  - Play a game at terminal size
//	invaders replays          - List recorded games
//	invaders replay [id]      - Watch or verify a recorded game
//	invaders serve            - Start SSH server for remote play
//	invaders config           - Print the game configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay database path (default: ~/.invaders/replays.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - Defend the planet from your terminal",
	Long: `Invaders is a terminal Space Invaders game.

Run without a command to play one game at the size of your terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Up/W/Space   - Fire
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Slower fleet, fewer enemy shots
  normal - Default tuning
  hard   - Faster fleet, more enemy shots
  fixed  - Fleet never speeds up

Examples:
  invaders
  invaders --difficulty hard
  invaders --seed 42 --record
  invaders --config ./my-invaders.yaml
  invaders replays
  invaders replay 3 --verify
  invaders serve --ssh :2222
  invaders config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Play flags live on the root command
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagRecord, "record", false, "Save a replay of the game")

	// Add subcommands
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
