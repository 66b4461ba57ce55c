package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagResetScores bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved game",
	Long: `Discard the saved game. The best score is kept.
With --scores the score history is cleared as well.

Examples:
  tui2048 reset
  tui2048 reset --scores`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear the score history")
}

func runReset(_ *cobra.Command, _ []string) {
	sess, err := openSession(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	if err := sess.games.ClearGameState(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Saved game discarded.")

	if flagResetScores {
		if err := sess.db.ClearScores(t2048.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Score history cleared.")
	}
	logger.Info("reset", "scores", flagResetScores)
}
