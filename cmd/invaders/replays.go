package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Display the most recent recorded games, newest first.

Games are only recorded when played with --record.

Examples:
  invaders replays
  invaders replays --limit 50
  invaders replays delete 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded game",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysDelete,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to show")
	replaysCmd.AddCommand(replaysDeleteCmd)
}

// parseReplayID converts a command argument to a replay ID.
func parseReplayID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", arg)
	}
	return id, nil
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	replays, err := store.RecentReplays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recorded games")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders --record' to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-12s  %-9s  %-7s  %-7s  %-6s  %s\n", "ID", "Player", "Outcome", "Ticks", "Grid", "Level", "Date")
	fmt.Printf("  %-5s  %-12s  %-9s  %-7s  %-7s  %-6s  %s\n", "--", "------", "-------", "-----", "----", "-----", "----")

	for _, r := range replays {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-5d  %-12s  %-9s  %-7d  %-7s  %-6s  %s\n",
			r.ID, r.Player, r.Outcome, r.Ticks,
			fmt.Sprintf("%dx%d", r.Width, r.Height), level,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'invaders replay <id>' to watch a game.")
}

func runReplaysDelete(cmd *cobra.Command, args []string) {
	id, err := parseReplayID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted replay #%d.\n", id)
}
