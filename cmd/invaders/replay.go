package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagVerify bool

var errPlaybackTooLarge = errors.New("recording is larger than the terminal")

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Watch or verify a recorded game",
	Long: `Play back a recorded game. Without an id a browser lists recent recordings.

With --verify the game is re-simulated without a screen and its outcome is
checked against the recording.

Examples:
  invaders replay
  invaders replay 3
  invaders replay 3 --verify`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Re-simulate headless and check the recorded outcome")
}

func runReplay(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var rec storage.Replay
	if len(args) == 1 {
		id, err := parseReplayID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rec, err = store.Replay(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		width, height := terminalSize()
		picked, ok, err := tui.RunReplayBrowser(store, width, height, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
		rec = picked
	}

	if flagVerify {
		verifyReplay(rec)
		return
	}
	watchReplay(rec)
}

// verifyReplay re-simulates a recording and reports the result.
func verifyReplay(rec storage.Replay) {
	snap, err := replay.Verify(rec)
	if errors.Is(err, replay.ErrOutcomeMismatch) {
		fmt.Fprintf(os.Stderr, "Replay #%d FAILED: %v\n", rec.ID, err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Replay #%d OK: %s after %d ticks, %d/%d invaders destroyed.\n",
		rec.ID, rec.Outcome, snap.Tick, snap.DeadInvaders, snap.TotalInvaders)
}

// checkPlaybackFits refuses recordings whose grid would not fit the terminal.
func checkPlaybackFits(rec storage.Replay, width, height int) error {
	if rec.Width > width || rec.Height > height {
		return fmt.Errorf("%w: replay #%d is %dx%d, terminal is %dx%d",
			errPlaybackTooLarge, rec.ID, rec.Width, rec.Height, width, height)
	}
	return nil
}

// watchReplay plays a recording on screen.
func watchReplay(rec storage.Replay) {
	width, height := terminalSize()
	if err := checkPlaybackFits(rec, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Resize the terminal or check the recording with --verify.")
		os.Exit(1)
	}

	game, script, err := replay.Load(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Parse([]byte(rec.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Driver.TickRate = flagFPS
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	result, err := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  rec.Width,
			ScreenH:  rec.Height,
			TickRate: cfg.Driver.TickRate,
			Seed:     rec.Seed,
		},
		Config:     cfg,
		Difficulty: rec.Difficulty,
		Player:     rec.Player,
		Game:       game,
		Script:     script,
		Logger:     logger.With("replay", rec.ID),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
	if !result.Quit {
		printResult(result)
	}
}
