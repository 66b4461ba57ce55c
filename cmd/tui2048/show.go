package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved game",
	Long: `Print the board, score and status of the saved game.

Examples:
  tui2048 show
  tui2048 show --db ./2048.db`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func runShow(_ *cobra.Command, _ []string) {
	sess, err := openSession(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	state, err := sess.games.GameState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if state == nil {
		fmt.Println("No saved game.")
		fmt.Println()
		fmt.Println("Run 'tui2048 play' or 'tui2048 move <direction>' to start one.")
		return
	}
	if err := t2048.ValidateGameInfo(*state); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	grid, err := t2048.NewGridFromState(state.Grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println(renderBoard(grid))
	fmt.Printf("Score: %d  Best: %d  Max tile: %d\n", state.Score, sess.bestScore(), grid.MaxTile())
	switch {
	case state.Won && !state.KeepPlaying:
		fmt.Println("You win!")
	case state.KeepPlaying:
		fmt.Println("Endless mode")
	}
}
