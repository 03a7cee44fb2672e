package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
)

// loadGameConfig resolves the YAML tuning and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(path)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	if err := config.ApplyInvadersPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
		return config.InvadersConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Driver.TickRate = flagFPS
	}
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playerName identifies the local player in recordings.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := terminalSize()

	// Replays are opt-in; without --record nothing is persisted
	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
			store = nil
		}
	}

	result, runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Driver.TickRate,
			Seed:     flagSeed,
		},
		Config:     cfg,
		Difficulty: flagDifficulty,
		Player:     playerName(),
		Store:      store,
		Record:     flagRecord,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printResult(result)
}

// printResult reports the outcome once the alternate screen is gone.
func printResult(result tui.Result) {
	snap := result.Snapshot
	switch snap.State {
	case invaders.StateVictory:
		fmt.Println(invaders.VictoryMessage)
	case invaders.StateDefeat:
		fmt.Println(invaders.DefeatMessage)
	}
	fmt.Printf("%d/%d invaders destroyed in %d ticks.\n", snap.DeadInvaders, snap.TotalInvaders, snap.Tick)
	if result.ReplayID != 0 {
		fmt.Printf("Replay saved as #%d. Watch it with 'invaders replay %d'.\n", result.ReplayID, result.ReplayID)
	}
}
