package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the game configuration as YAML.

By default the effective configuration is shown, after the config file
and difficulty preset are applied. With --defaults the built-in file is
printed as-is, ready to copy to ~/.invaders/configs/invaders.yaml.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in default config file")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	if err := writeConfig(os.Stdout, flagShowDefaults, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig prints either the embedded defaults or the resolved tuning.
func writeConfig(w io.Writer, defaults bool, path, difficulty string) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}
	cfg, err := loadGameConfig(path, difficulty)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
